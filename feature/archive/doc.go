// Package archive keeps generated reports in S3 compatible object storage.
//
// Files are uploaded as "<prefix>/<YYYY-MM-DD>/<file name>". EnsureBucket
// creates the bucket on first use.
//
// # HTTP Endpoints
//
//   - GET /archive : lists archived reports (supports ?date=YYYY-MM-DD).
//   - GET /archive/bucket : checks the bucket (supports ?fix=true).
package archive
