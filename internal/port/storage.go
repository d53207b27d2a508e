package port

import "context"

// ObjectStorage abstracts the bucket operations this handler performs:
// fetching an uploaded object and managing a bucket's access policy.
type ObjectStorage interface {
	FetchObject(ctx context.Context, bucket, key string) ([]byte, error)
	PutBucketPolicy(ctx context.Context, bucket, policy string) error
	DeleteBucketPolicy(ctx context.Context, bucket string) error
}
