package model

// Header は搬入ヘッダー (hainyu_headers) の1行です。
type Header struct {
	HainyuID string  `db:"hainyu_id"`
	Date     *string `db:"date"`
	Shipper  string  `db:"shipper"`
	Dest     string  `db:"dest"`
	ItemName string  `db:"item_name"`
	Mark     string  `db:"mark"`
}

// Item は搬入明細 (hainyu_items) の1行です。
// id と hainyu_id 以外は NULL を許容するためポインタで保持します。
// no_from・no_to・qty は INTEGER 列ですが、旧版の画面が小数をそのまま保存した行もあるため float64 で読みます。
type Item struct {
	ID          int64    `db:"id"`
	HainyuID    string   `db:"hainyu_id"`
	PackageType *string  `db:"package_type"`
	NoFrom      *float64 `db:"no_from"`
	NoTo        *float64 `db:"no_to"`
	Qty         *float64 `db:"qty"`
	L           *float64 `db:"L"`
	W           *float64 `db:"W"`
	H           *float64 `db:"H"`
	WeightKg    *float64 `db:"weight_kg"`
	M3          *float64 `db:"m3"`
}

// MarkImage は荷印画像 (hainyu_mark_images) の1行です。
type MarkImage struct {
	ID        int64  `db:"id"`
	HainyuID  string `db:"hainyu_id"`
	ImagePath string `db:"image_path"`
	CreatedAt string `db:"created_at"`
}

// SummaryRow は一覧・集計クエリの1行です。
type SummaryRow struct {
	HainyuID    string  `db:"hainyu_id"`
	Date        *string `db:"date"`
	Shipper     string  `db:"shipper"`
	Dest        string  `db:"dest"`
	ItemName    string  `db:"item_name"`
	ItemCount   int64   `db:"item_count"`
	TotalQty    float64 `db:"total_qty"`
	TotalM3     float64 `db:"total_m3"`
	TotalWeight float64 `db:"total_weight"`
	ThumbPath   *string `db:"thumb_path"`
}

type SummaryFilters struct {
	DateFrom string
	DateTo   string
	Shipper  string
	Dest     string
}
