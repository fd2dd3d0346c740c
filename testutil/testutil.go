package testutil

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
)

// SearchResult represents a nearest-centroid result.
type SearchResult struct {
	Index    int
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Alphabets used by Password, one per mask class family.
var (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Special = "><-?./!%@&_#$*+= ~^,;:"
	Unicode = "éßäöüÄÖÜçñ€٣пароль"
)

// Password returns a random password of n code points drawn from all
// alphabets.
func (r *RNG) Password(n int) string {
	alphabets := [][]rune{
		[]rune(Lower), []rune(Upper), []rune(Digits), []rune(Special), []rune(Unicode),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	for i := 0; i < n; i++ {
		// Skew toward lowercase the way real passwords are.
		a := r.zipfLocked(len(alphabets), 1.2)
		chars := alphabets[a]
		sb.WriteRune(chars[r.rand.Intn(len(chars))])
	}
	return sb.String()
}

// Passwords returns num random passwords with lengths in [minLen, maxLen].
func (r *RNG) Passwords(num, minLen, maxLen int) []string {
	out := make([]string, num)
	for i := range out {
		out[i] = r.Password(minLen + r.Intn(maxLen-minLen+1))
	}
	return out
}

// CentroidRows generates num rows of dim values. Each row looks like the mean
// mask of a cluster: a random prefix length of values in [1, 7] followed by
// zeros.
func (r *RNG) CentroidRows(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	rows := make([][]float64, num)

	for i := range num {
		row := data[i*dim : (i+1)*dim]
		length := 1 + r.rand.Intn(dim)
		for j := 0; j < length; j++ {
			row[j] = 1 + 6*r.rand.Float64()
		}
		rows[i] = row
	}

	return rows
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var norm float64
	for k := 1; k <= n; k++ {
		norm += 1.0 / math.Pow(float64(k), s)
	}

	u := r.rand.Float64() * norm
	var cum float64
	for k := 1; k <= n; k++ {
		cum += 1.0 / math.Pow(float64(k), s)
		if u < cum {
			return k - 1
		}
	}
	return n - 1
}

// BruteForceNearest performs exact search for ground truth. Ties keep the
// lower index first.
func BruteForceNearest(rows [][]float64, query []float64, k int) []SearchResult {
	results := make([]SearchResult, len(rows))

	for i, row := range rows {
		var sum float64
		for j := range row {
			d := query[j] - row[j]
			sum += d * d
		}
		results[i] = SearchResult{Index: i, Distance: math.Sqrt(sum)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}
