package markimage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"hainyu/config"
	"hainyu/mappers"
	"hainyu/model"
)

const (
	fileTimestampLayout = "20060102150405"
	createdAtLayout     = "2006-01-02 15:04:05"
	defaultExt          = ".jpg"
	maxNameAttempts     = 100
)

var idReplacer = strings.NewReplacer("/", "_", `\`, "_", ":", "_")

// Storage は荷印画像を静的ディレクトリ配下に保存します。
type Storage struct {
	StaticDir string // 例: ./static
	SubDir    string // 例: mark_images (StaticDir からの相対)
	URLPrefix string // 例: /static/
	Now       func() time.Time
}

func NewStorage(cfg config.Static) *Storage {
	return &Storage{
		StaticDir: cfg.Dir,
		SubDir:    cfg.MarkImageDir,
		URLPrefix: cfg.URLPrefix,
		Now:       time.Now,
	}
}

// Save は src を {搬入ID}_{yyyyMMddHHmmss}{拡張子} として書き込み、登録用の行を返します。
// 拡張子が無い場合は .jpg です。同名ファイルが既にある場合は上書きせず _2, _3 ... を付けます。
func (s *Storage) Save(hainyuID, originalName string, src io.Reader) (model.MarkImage, error) {
	now := s.Now()

	ext := filepath.Ext(originalName)
	if len(ext) <= 1 {
		ext = defaultExt
	}
	base := idReplacer.Replace(hainyuID) + "_" + now.Format(fileTimestampLayout)

	dir := filepath.Join(s.StaticDir, s.SubDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return model.MarkImage{}, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}

	f, name, err := createUnique(dir, base, ext)
	if err != nil {
		return model.MarkImage{}, err
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(filepath.Join(dir, name))
		return model.MarkImage{}, fmt.Errorf("failed to write image %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return model.MarkImage{}, fmt.Errorf("failed to close image %s: %w", name, err)
	}

	return model.MarkImage{
		HainyuID:  hainyuID,
		ImagePath: path.Join(filepath.ToSlash(s.SubDir), name),
		CreatedAt: now.Format(createdAtLayout),
	}, nil
}

// createUnique は既存ファイルを上書きしないよう O_EXCL で作成します。
func createUnique(dir, base, ext string) (*os.File, string, error) {
	for n := 1; n <= maxNameAttempts; n++ {
		name := base + ext
		if n > 1 {
			name = fmt.Sprintf("%s_%d%s", base, n, ext)
		}
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("failed to create image file %s: %w", name, err)
		}
	}
	return nil, "", fmt.Errorf("too many images named %s%s", base, ext)
}

func (s *Storage) URL(imagePath string) string {
	return mappers.StaticURL(s.URLPrefix, imagePath)
}
