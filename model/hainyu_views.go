package model

// HeaderView は GET /api/hainyu/{id} の header 部分です。
// hainyu_id のキー名だけスネークケースなのは既存画面との互換のためです。
type HeaderView struct {
	HainyuID string  `json:"hainyu_id"`
	Date     *string `json:"date"`
	Shipper  string  `json:"shipper"`
	Dest     string  `json:"dest"`
	ItemName string  `json:"itemName"`
	Mark     string  `json:"mark"`
}

type ItemView struct {
	ID          int64    `json:"id"`
	PackageType *string  `json:"packageType"`
	NoFrom      *float64 `json:"noFrom"`
	NoTo        *float64 `json:"noTo"`
	Qty         *float64 `json:"qty"`
	L           *float64 `json:"L"`
	W           *float64 `json:"W"`
	H           *float64 `json:"H"`
	WeightKg    *float64 `json:"weightKg"`
	M3          *float64 `json:"m3"`
}

type HainyuResponse struct {
	Header HeaderView `json:"header"`
	Items  []ItemView `json:"items"`
}

// HeaderInput は保存リクエストのヘッダーです。未指定の文字列項目は空文字として保存されます。
type HeaderInput struct {
	Date     *string `json:"date"`
	Shipper  *string `json:"shipper"`
	Dest     *string `json:"dest"`
	ItemName *string `json:"itemName"`
	Mark     *string `json:"mark"`
}

// ItemInput は保存リクエストの明細1行です。未指定の項目は NULL になります。
type ItemInput struct {
	PackageType *string  `json:"packageType"`
	NoFrom      *int64   `json:"noFrom"`
	NoTo        *int64   `json:"noTo"`
	Qty         *int64   `json:"qty"`
	L           *float64 `json:"L"`
	W           *float64 `json:"W"`
	H           *float64 `json:"H"`
	WeightKg    *float64 `json:"weightKg"`
	M3          *float64 `json:"m3"`
}

type SavePayload struct {
	Header *HeaderInput `json:"header"`
	Items  []ItemInput  `json:"items"`
}

type SearchResult struct {
	HainyuID    string  `json:"hainyuId"`
	Date        *string `json:"date"`
	Shipper     string  `json:"shipper"`
	Dest        string  `json:"dest"`
	ItemName    string  `json:"itemName"`
	LastUpdated *string `json:"lastUpdated"`
}

type SummaryResult struct {
	HainyuID    string  `json:"hainyuId"`
	Date        *string `json:"date"`
	Shipper     string  `json:"shipper"`
	Dest        string  `json:"dest"`
	ItemName    string  `json:"itemName"`
	ItemCount   int64   `json:"itemCount"`
	TotalQty    float64 `json:"totalQty"`
	TotalM3     float64 `json:"totalM3"`
	TotalWeight float64 `json:"totalWeight"`
	ThumbURL    *string `json:"thumbUrl"`
}

type MarkImageView struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
}
