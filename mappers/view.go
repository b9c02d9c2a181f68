package mappers

import (
	"strings"

	"hainyu/model"
)

// ToHeaderView は hainyu_headers の行を画面用の形に変換します。
func ToHeaderView(h model.Header) model.HeaderView {
	return model.HeaderView{
		HainyuID: h.HainyuID,
		Date:     h.Date,
		Shipper:  h.Shipper,
		Dest:     h.Dest,
		ItemName: h.ItemName,
		Mark:     h.Mark,
	}
}

func ToItemViews(items []model.Item) []model.ItemView {
	views := make([]model.ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, model.ItemView{
			ID:          it.ID,
			PackageType: it.PackageType,
			NoFrom:      it.NoFrom,
			NoTo:        it.NoTo,
			Qty:         it.Qty,
			L:           it.L,
			W:           it.W,
			H:           it.H,
			WeightKg:    it.WeightKg,
			M3:          it.M3,
		})
	}
	return views
}

// ToSearchResults はヘッダーを検索結果に変換します。
// 更新日時は記録していないため lastUpdated には date をそのまま入れます。
func ToSearchResults(headers []model.Header) []model.SearchResult {
	results := make([]model.SearchResult, 0, len(headers))
	for _, h := range headers {
		results = append(results, model.SearchResult{
			HainyuID:    h.HainyuID,
			Date:        h.Date,
			Shipper:     h.Shipper,
			Dest:        h.Dest,
			ItemName:    h.ItemName,
			LastUpdated: h.Date,
		})
	}
	return results
}

func ToSummaryResults(rows []model.SummaryRow, urlPrefix string) []model.SummaryResult {
	results := make([]model.SummaryResult, 0, len(rows))
	for _, r := range rows {
		var thumb *string
		if r.ThumbPath != nil && *r.ThumbPath != "" {
			u := StaticURL(urlPrefix, *r.ThumbPath)
			thumb = &u
		}
		results = append(results, model.SummaryResult{
			HainyuID:    r.HainyuID,
			Date:        r.Date,
			Shipper:     r.Shipper,
			Dest:        r.Dest,
			ItemName:    r.ItemName,
			ItemCount:   r.ItemCount,
			TotalQty:    r.TotalQty,
			TotalM3:     r.TotalM3,
			TotalWeight: r.TotalWeight,
			ThumbURL:    thumb,
		})
	}
	return results
}

func ToMarkImageViews(images []model.MarkImage, urlPrefix string) []model.MarkImageView {
	views := make([]model.MarkImageView, 0, len(images))
	for _, img := range images {
		views = append(views, model.MarkImageView{
			ID:        img.ID,
			ImageURL:  StaticURL(urlPrefix, img.ImagePath),
			CreatedAt: img.CreatedAt,
		})
	}
	return views
}

// StaticURL は静的ディレクトリからの相対パスを公開URLに変換します。
// 返すのはスキームとホストを含まないルート相対URLで、画面と同じホストの /static/ 配下を指します。
// 例: StaticURL("/static/", "mark_images/H1.jpg") -> "/static/mark_images/H1.jpg"
func StaticURL(urlPrefix, relPath string) string {
	rel := strings.TrimLeft(strings.ReplaceAll(relPath, `\`, "/"), "/")
	return strings.TrimRight(urlPrefix, "/") + "/" + rel
}
