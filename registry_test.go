package maskscore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/maskscore/blobstore"
	"github.com/hupe1980/maskscore/centroid"
)

// countingStore counts Open calls and optionally blocks them until release
// is closed.
type countingStore struct {
	blobstore.BlobStore
	opens   atomic.Int64
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newCountingStore(inner blobstore.BlobStore, block bool) *countingStore {
	s := &countingStore{BlobStore: inner, started: make(chan struct{})}
	if block {
		s.release = make(chan struct{})
	}
	return s
}

func (s *countingStore) ID() string { return "counting://" + blobstore.ID(s.BlobStore) }

func (s *countingStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	s.opens.Add(1)
	s.once.Do(func() { close(s.started) })
	if s.release != nil {
		<-s.release
	}
	return s.BlobStore.Open(ctx, name)
}

func TestRegistry_Default(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	s1, err := r.Default(ctx)
	require.NoError(t, err)
	s2, err := r.Default(ctx)
	require.NoError(t, err)

	assert.Same(t, s1, s2)
	assert.Equal(t, []string{BundledSource().Key()}, r.Loaded())
	assert.InDelta(t, 6.061442733105814, s1.Score("Isim@_Ariri07"), 1e-9)
}

func TestRegistry_ConcurrentFirstUseLoadsOnce(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore(centroid.Bundled(), true)
	src := StoreSource(store, centroid.BundledName)
	r := NewRegistry()

	const n = 32
	results := make([]*Scorer, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.FromSource(ctx, src)
		}(i)
	}

	<-store.started
	time.Sleep(20 * time.Millisecond)
	close(store.release)
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}

	s, err := r.FromSource(ctx, src)
	require.NoError(t, err)
	assert.Same(t, results[0], s)
	assert.Equal(t, int64(1), store.opens.Load())
}

func TestRegistry_CustomSourcesAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	row := make([]byte, 0, 64)
	for i := 0; i < centroid.Width; i++ {
		if i > 0 {
			row = append(row, ',')
		}
		row = append(row, '0')
	}
	require.NoError(t, store.Put(ctx, "zeros.csv", row))

	r := NewRegistry()

	def, err := r.Default(ctx)
	require.NoError(t, err)

	custom, err := r.FromSource(ctx, StoreSource(store, "zeros.csv"))
	require.NoError(t, err)
	assert.NotSame(t, def, custom)
	assert.Equal(t, 1, custom.Len())
	assert.Equal(t, 0.0, custom.Score(""))

	again, err := r.FromSource(ctx, StoreSource(store, "zeros.csv"))
	require.NoError(t, err)
	assert.Same(t, custom, again)

	// The default is unaffected by the custom source.
	def2, err := r.Default(ctx)
	require.NoError(t, err)
	assert.Same(t, def, def2)
	assert.Len(t, r.Loaded(), 2)
}

func TestRegistry_FailedLoadIsNotCached(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore(blobstore.NewMemoryStore(), false)
	src := StoreSource(store, "late.csv")
	r := NewRegistry()

	_, err := r.FromSource(ctx, src)
	require.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Empty(t, r.Loaded())

	data, err := centroid.Bundled().Open(ctx, centroid.BundledName)
	require.NoError(t, err)
	content, err := blobstore.ReadAll(ctx, data)
	require.NoError(t, err)
	require.NoError(t, store.BlobStore.(*blobstore.MemoryStore).Put(ctx, "late.csv", content))

	s, err := r.FromSource(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 30, s.Len())
	assert.Equal(t, int64(2), store.opens.Load())
}

func TestRegistry_CanceledWaiter(t *testing.T) {
	store := newCountingStore(centroid.Bundled(), true)
	src := StoreSource(store, centroid.BundledName)
	r := NewRegistry()

	var (
		loaded  *Scorer
		loadErr error
		done    = make(chan struct{})
	)
	go func() {
		defer close(done)
		loaded, loadErr = r.FromSource(context.Background(), src)
	}()

	<-store.started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.FromSource(ctx, src)
	assert.ErrorIs(t, err, context.Canceled)

	close(store.release)
	<-done

	require.NoError(t, loadErr)
	require.NotNil(t, loaded)
	assert.Equal(t, int64(1), store.opens.Load())
}

func TestRegistry_NilStore(t *testing.T) {
	_, err := NewRegistry().FromSource(context.Background(), Source{Name: "x.csv"})
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestPackageLevel(t *testing.T) {
	ctx := context.Background()

	s1, err := Default(ctx)
	require.NoError(t, err)
	s2, err := FromSource(ctx, BundledSource())
	require.NoError(t, err)
	assert.Same(t, s1, s2)

	d1, err := Score(ctx, "Isim@_Ariri07")
	require.NoError(t, err)
	d2, err := Score(ctx, "Isim@_Ariri07")
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.InDelta(t, 6.061442733105814, d1, 1e-9)
}

func TestSource(t *testing.T) {
	src := FileSource("testdata/centers.csv")
	assert.Equal(t, "centers.csv", src.Name)
	assert.Contains(t, src.Key(), "file://")
	assert.Equal(t, src.Key(), FileSource("./testdata/../testdata/centers.csv").Key())

	assert.Equal(t, "fs://maskscore/centroid/"+centroid.BundledName, BundledSource().Key())
	assert.Equal(t, "x.csv", Source{Name: "x.csv"}.Key())
}
