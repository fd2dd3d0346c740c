package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DDBClient is the subset of the DynamoDB API used by DDBResolver.
type DDBClient interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ErrDatasetNotFound is returned when no table has been published for a dataset.
var ErrDatasetNotFound = errors.New("no centroid table published for dataset")

// DDBResolver resolves the active centroid table of a dataset from a
// DynamoDB pointer table.
//
// Table layout: partition key "dataset" (S), sort key "version" (N) and an
// "object_key" (S) attribute holding the blob name relative to the Store prefix.
// The highest version wins.
type DDBResolver struct {
	client DDBClient
	table  string
}

// NewDDBResolver creates a resolver over the given table.
func NewDDBResolver(client DDBClient, table string) *DDBResolver {
	return &DDBResolver{client: client, table: table}
}

// Resolve returns the object key and version of the latest table for dataset.
func (r *DDBResolver) Resolve(ctx context.Context, dataset string) (string, uint64, error) {
	resp, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("dataset = :ds"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ds": &types.AttributeValueMemberS{Value: dataset},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to query DynamoDB: %w", err)
	}

	if len(resp.Items) == 0 {
		return "", 0, fmt.Errorf("%w: %s", ErrDatasetNotFound, dataset)
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return "", 0, errors.New("invalid version attribute in DynamoDB")
	}
	keyAttr, ok := item["object_key"].(*types.AttributeValueMemberS)
	if !ok {
		return "", 0, errors.New("invalid object_key attribute in DynamoDB")
	}

	var version uint64
	if _, err := fmt.Sscanf(versionAttr.Value, "%d", &version); err != nil {
		return "", 0, fmt.Errorf("failed to parse version: %w", err)
	}

	return keyAttr.Value, version, nil
}
