package centroid

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/maskscore/blobstore"
	"github.com/hupe1980/maskscore/codec"
	"github.com/hupe1980/maskscore/resource"
)

func testTable() string {
	return csvRow(1, 1, 2) + "\n" + csvRow(3, 5, 5, 5) + "\n"
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "centers.csv", []byte(testTable())))

	m, err := NewLoader().Load(ctx, store, "centers.csv")
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	assert.Equal(t, []float64{3, 5, 5, 5}, m.Row(1)[:4])
}

func TestLoader_Load_Compressed(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	want, err := Parse(strings.NewReader(testTable()))
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		typ  CompressionType
	}{
		{"centers.csv.zst", CompressionZSTD},
		{"centers.csv.lz4", CompressionLZ4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Compress([]byte(testTable()), tc.typ)
			require.NoError(t, err)
			require.NoError(t, store.Put(ctx, tc.name, data))

			m, err := NewLoader().Load(ctx, store, tc.name)
			require.NoError(t, err)
			assert.Equal(t, want.Rows(), m.Rows())
		})
	}
}

func TestLoader_Load_JSON(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	rows := [][]float64{unitRow(0, 1), unitRow(27, 2)}
	require.NoError(t, store.Put(ctx, "centers.json", codec.MustMarshal(codec.Default, rows)))

	data, err := Compress(codec.MustMarshal(codec.JSON{}, rows), CompressionZSTD)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "centers.json.zst", data))

	for _, name := range []string{"centers.json", "centers.json.zst"} {
		m, err := (&Loader{Codec: codec.JSON{}}).Load(ctx, store, name)
		require.NoError(t, err, name)
		assert.Equal(t, rows, m.Rows())
	}
}

func TestLoader_Load_Missing(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), blobstore.NewMemoryStore(), "missing.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
	assert.Contains(t, err.Error(), "missing.csv")
}

type failingStore struct {
	blobstore.BlobStore
}

func (failingStore) Open(context.Context, string) (blobstore.Blob, error) {
	return failingBlob{}, nil
}

type failingBlob struct{}

var errRead = errors.New("connection reset")

func (failingBlob) Close() error { return nil }
func (failingBlob) ReadAt(context.Context, []byte, int64) (int, error) {
	return 0, errRead
}
func (failingBlob) ReadRange(context.Context, int64, int64) (io.ReadCloser, error) {
	return nil, errRead
}
func (failingBlob) Size() int64 { return 128 }

func TestLoader_Load_ReadFailure(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), failingStore{}, "centers.csv")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, errRead)
}

func TestLoader_Load_Malformed(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "bad.csv", []byte(csvRow()+"\n1,2\n")))
	require.NoError(t, store.Put(ctx, "bad.csv.zst", []byte("not zstd")))

	_, err := NewLoader().Load(ctx, store, "bad.csv")
	assert.ErrorIs(t, err, ErrMalformedCentroidData)
	assert.NotErrorIs(t, err, ErrSourceUnavailable)

	_, err = NewLoader().Load(ctx, store, "bad.csv.zst")
	assert.ErrorIs(t, err, ErrMalformedCentroidData)
}

func TestLoader_Load_Empty(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "empty.csv", nil))

	m, err := NewLoader().Load(ctx, store, "empty.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestLoader_Load_RateLimited(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "centers.csv", []byte(testTable())))

	rc := resource.NewController(resource.Config{
		MaxConcurrentLoads: 2,
		IOLimitBytesPerSec: 64 * 1024,
	})
	l := &Loader{Controller: rc}

	m, err := l.Load(ctx, store, "centers.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, int64(0), rc.ActiveLoads())
}

func TestLoader_Load_Canceled(t *testing.T) {
	rc := resource.NewController(resource.Config{MaxConcurrentLoads: 1})
	require.True(t, rc.TryAcquireLoad())
	defer rc.ReleaseLoad()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Loader{Controller: rc}).Load(ctx, blobstore.NewMemoryStore(), "centers.csv")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectCompression(t *testing.T) {
	typ, base := DetectCompression("a/b.csv.zst")
	assert.Equal(t, CompressionZSTD, typ)
	assert.Equal(t, "a/b.csv", base)

	typ, base = DetectCompression("b.json.lz4")
	assert.Equal(t, CompressionLZ4, typ)
	assert.Equal(t, "b.json", base)

	typ, base = DetectCompression("b.csv")
	assert.Equal(t, CompressionNone, typ)
	assert.Equal(t, "b.csv", base)
}
