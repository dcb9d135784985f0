package spreadsheet

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// UploadGCS stores an exported sheet in a Cloud Storage bucket and returns its gs:// URI.
// Credentials come from the environment (GOOGLE_APPLICATION_CREDENTIALS or metadata server).
func UploadGCS(ctx context.Context, bucket string, s Sheet, format Format) (string, error) {
	data, err := Bytes(s, format)
	if err != nil {
		return "", err
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("gcs client: %w", err)
	}
	defer client.Close()

	object := s.FileName(format)
	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = ContentType(format)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", object, err)
	}
	return fmt.Sprintf("gs://%s/%s", bucket, object), nil
}
