package summary

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"hainyu/database"
	"hainyu/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "summary_test.db")+"?_journal_mode=WAL&_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.InitSchema(db))
	return db
}

func ptr[T any](v T) *T { return &v }

func seedH1(t *testing.T, db *sqlx.DB) {
	t.Helper()
	require.NoError(t, database.SaveHainyu(db,
		model.Header{HainyuID: "H1", Date: ptr("2024-01-05"), Shipper: "Acme", Dest: "Tokyo", ItemName: "Boxes", Mark: "M1"},
		[]model.Item{{
			PackageType: ptr("carton"), NoFrom: ptr(1.0), NoTo: ptr(10.0), Qty: ptr(10.0),
			L: ptr(1.0), W: ptr(1.0), H: ptr(1.0), WeightKg: ptr(2.5), M3: ptr(1.0),
		}}))
}

func TestSummaryZeroItemHeaders(t *testing.T) {
	db := newTestDB(t)
	for _, id := range []string{"A", "B"} {
		require.NoError(t, database.SaveHainyu(db, model.Header{HainyuID: id, Date: ptr("2024-03-01")}, nil))
	}

	rec := httptest.NewRecorder()
	SummaryHandler(db, "/static/")(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[
		{"hainyuId":"A","date":"2024-03-01","shipper":"","dest":"","itemName":"","itemCount":0,"totalQty":0,"totalM3":0,"totalWeight":0,"thumbUrl":null},
		{"hainyuId":"B","date":"2024-03-01","shipper":"","dest":"","itemName":"","itemCount":0,"totalQty":0,"totalM3":0,"totalWeight":0,"thumbUrl":null}
	]}`, rec.Body.String())
}

func TestSummaryTotalsAndThumbnail(t *testing.T) {
	db := newTestDB(t)
	seedH1(t, db)
	for _, p := range []string{"mark_images/H1_20240105100000.jpg", "mark_images/H1_20240105090000.jpg"} {
		_, err := database.InsertMarkImage(db, model.MarkImage{HainyuID: "H1", ImagePath: p, CreatedAt: "2024-01-05 10:00:00"})
		require.NoError(t, err)
	}

	rec := httptest.NewRecorder()
	SummaryHandler(db, "/static/")(rec, httptest.NewRequest(http.MethodGet, "/api/summary?shipper=%20Acme%20&dateFrom=2024-01-05&dateTo=2024-01-05", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []model.SummaryResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	r := resp.Results[0]
	assert.Equal(t, int64(1), r.ItemCount)
	assert.Equal(t, 10.0, r.TotalQty)
	assert.InDelta(t, 1.0, r.TotalM3, 1e-9)
	assert.InDelta(t, 25.0, r.TotalWeight, 1e-9)
	require.NotNil(t, r.ThumbURL)
	assert.Equal(t, "/static/mark_images/H1_20240105090000.jpg", *r.ThumbURL)
}

func TestSummaryFilterExcludesAll(t *testing.T) {
	db := newTestDB(t)
	seedH1(t, db)

	rec := httptest.NewRecorder()
	SummaryHandler(db, "/static/")(rec, httptest.NewRequest(http.MethodGet, "/api/summary?dest=Osaka", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestExportSummaryCSVUTF8(t *testing.T) {
	db := newTestDB(t)
	seedH1(t, db)

	rec := httptest.NewRecorder()
	ExportSummaryCSVHandler(db)(rec, httptest.NewRequest(http.MethodGet, "/api/summary/export_csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename*=UTF-8''")

	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	lines := strings.Split(strings.TrimPrefix(body, "\xEF\xBB\xBF"), "\r\n")
	require.Len(t, lines, 3) // ヘッダー + 1行 + 末尾の空文字
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Equal(t, `"H1","2024-01-05","Acme","Tokyo","Boxes","1","10","1.000","25.00"`, lines[1])
	assert.Equal(t, "", lines[2])
}

func TestExportSummaryCSVShiftJIS(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.SaveHainyu(db,
		model.Header{HainyuID: "J1", Date: ptr("2024-04-01"), Shipper: "山田運送", Dest: "東京", ItemName: `段ボール "大"`}, nil))

	rec := httptest.NewRecorder()
	ExportSummaryCSVHandler(db)(rec, httptest.NewRequest(http.MethodGet, "/api/summary/export_csv?encoding=sjis", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=Shift_JIS", rec.Header().Get("Content-Type"))

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), rec.Body.Bytes())
	require.NoError(t, err)
	assert.Contains(t, string(decoded), `"J1","2024-04-01","山田運送","東京","段ボール ""大""","0","0","0.000","0.00"`)
}

func TestSummaryAndExportToleratesFractionalQty(t *testing.T) {
	db := newTestDB(t)
	seedH1(t, db)
	require.NoError(t, database.SaveHainyu(db, model.Header{HainyuID: "P", Date: ptr("2024-01-06")}, nil))
	_, err := db.Exec(`INSERT INTO hainyu_items (hainyu_id, qty) VALUES ('P', 2.5)`)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	SummaryHandler(db, "/static/")(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalQty":2.5`)
	assert.Contains(t, rec.Body.String(), `"totalQty":10,`)

	rec = httptest.NewRecorder()
	ExportSummaryCSVHandler(db)(rec, httptest.NewRequest(http.MethodGet, "/api/summary/export_csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"P","2024-01-06","","","","1","2.5","0.000","0.00"`)
}
