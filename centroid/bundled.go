package centroid

import (
	"embed"

	"github.com/hupe1980/maskscore/blobstore"
)

// BundledName is the name of the default table inside Bundled.
const BundledName = "data/cluster_centers_HAC_aff.csv"

//go:embed data/cluster_centers_HAC_aff.csv
var bundledFS embed.FS

var bundled = blobstore.NewFSStore(bundledFS, "maskscore/centroid")

// Bundled returns the read-only store holding the default table.
func Bundled() *blobstore.FSStore {
	return bundled
}
