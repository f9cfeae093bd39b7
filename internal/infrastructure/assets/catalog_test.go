package assets

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func newTestCatalog(out *bytes.Buffer) (*Catalog, *int) {
	calls := 0
	c := NewCatalog(fstest.MapFS{"img/ok.png": {Data: []byte("png")}}, log.New(out))
	c.load = func(fsys fs.FS, path string) (*ebiten.Image, error) {
		calls++
		if _, err := fs.Stat(fsys, path); err != nil {
			return nil, err
		}
		if path == "img/ok.png" {
			return nil, nil
		}
		return nil, errors.New("decode")
	}
	return c, &calls
}

func TestCatalog_Caches(t *testing.T) {
	var out bytes.Buffer
	c, calls := newTestCatalog(&out)

	c.Image("img/ok.png")
	c.Image("img/ok.png")

	assert.Equal(t, 1, *calls)
	assert.Empty(t, c.Missing())
	assert.Empty(t, out.String())
}

func TestCatalog_MissingWarnsOnce(t *testing.T) {
	var out bytes.Buffer
	c, calls := newTestCatalog(&out)

	assert.Nil(t, c.Image("img/gone.png"))
	assert.Nil(t, c.Image("img/gone.png"))
	c.Preload([]string{"img/b.png", "img/a.png", ""})

	assert.Equal(t, 3, *calls)
	assert.Equal(t, []string{"img/a.png", "img/b.png", "img/gone.png"}, c.Missing())
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("image unavailable")))
}
