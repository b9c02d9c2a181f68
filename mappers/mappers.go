package mappers

import "hainyu/model"

/**
 * MapInputToHeader は保存リクエストのヘッダーを hainyu_headers の行にマッピングします。
 *
 * 荷主・仕向地・品名・荷印は未指定なら空文字、日付は NULL を含めそのまま渡します。
 * 部分更新はせず、常に全項目を上書きする前提の値を作ります。
 */
func MapInputToHeader(hainyuID string, in *model.HeaderInput) model.Header {
	h := model.Header{HainyuID: hainyuID}
	if in == nil {
		return h
	}
	h.Date = in.Date
	h.Shipper = stringOrEmpty(in.Shipper)
	h.Dest = stringOrEmpty(in.Dest)
	h.ItemName = stringOrEmpty(in.ItemName)
	h.Mark = stringOrEmpty(in.Mark)
	return h
}

// MapInputToItems は明細の入力を登録順のまま hainyu_items の行に変換します。
// m3 は再計算せず、送られた値をそのまま使います。
func MapInputToItems(hainyuID string, inputs []model.ItemInput) []model.Item {
	items := make([]model.Item, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, model.Item{
			HainyuID:    hainyuID,
			PackageType: in.PackageType,
			NoFrom:      intToFloat(in.NoFrom),
			NoTo:        intToFloat(in.NoTo),
			Qty:         intToFloat(in.Qty),
			L:           in.L,
			W:           in.W,
			H:           in.H,
			WeightKg:    in.WeightKg,
			M3:          in.M3,
		})
	}
	return items
}

func intToFloat(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
