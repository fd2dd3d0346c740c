// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "centroids/")
//	scorer, err := maskscore.Open(ctx, maskscore.StoreSource(store, "hac_aff.csv.zst"))
//
// # Active Tables
//
// Clustering pipelines publish new centroid tables under fresh object keys and
// record the active key per dataset in DynamoDB. DDBResolver looks that key up
// once at startup:
//
//	key, err := s3.NewDDBResolver(dynamodb.NewFromConfig(cfg), "centroid-tables").
//	    Resolve(ctx, "hac-aff")
//
// # Features
//
//   - Range reads for partial fetches
//   - Parallel whole-object downloads through the S3 transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
