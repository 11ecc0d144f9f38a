package upload

import (
	"bytes"
	"context"
	"image"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
)

// fakeS3 records PutObject calls.
type fakeS3 struct {
	calls int
	key   string
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	f.key = *params.Key
	return &s3.PutObjectOutput{}, nil
}

func newTestUploader(client S3API) *Uploader {
	return &Uploader{
		Client:        client,
		Bucket:        "media",
		Accept:        []string{"image/jpeg", "image/png"},
		MaxSize:       10 * 1024 * 1024,
		PublicBaseURL: "https://media.mustaqbal.sch.id",
	}
}

func TestUpload_OversizeRejectedBeforeNetwork(t *testing.T) {
	fake := &fakeS3{}
	u := newTestUploader(fake)

	_, err := u.Upload(context.Background(), Input{
		Filename:    "brosur.png",
		ContentType: "image/png",
		Size:        11 * 1024 * 1024,
		Body:        bytes.NewReader(nil),
	})
	if err == nil {
		t.Fatal("expected error for oversize upload")
	}
	if !strings.Contains(err.Error(), "10 MB") {
		t.Errorf("error %q should name the limit in MB", err)
	}
	if fake.calls != 0 {
		t.Errorf("PutObject was called %d times; oversize uploads must be rejected before any network call", fake.calls)
	}
}

func TestUpload_DisallowedTypeRejectedBeforeNetwork(t *testing.T) {
	fake := &fakeS3{}
	u := newTestUploader(fake)

	_, err := u.Upload(context.Background(), Input{
		Filename:    "virus.exe",
		ContentType: "application/octet-stream",
		Size:        100,
		Body:        bytes.NewReader(nil),
	})
	if err == nil {
		t.Fatal("expected error for disallowed type")
	}
	if fake.calls != 0 {
		t.Errorf("PutObject was called %d times", fake.calls)
	}
}

func TestUpload_ReturnsPublicURL(t *testing.T) {
	fake := &fakeS3{}
	u := newTestUploader(fake)

	url, err := u.Upload(context.Background(), Input{
		Filename:    "Foto Gedung.jpg",
		ContentType: "image/jpeg",
		Size:        2048,
		Body:        bytes.NewReader(make([]byte, 2048)),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("expected one PutObject call, got %d", fake.calls)
	}
	if !strings.HasPrefix(url, "https://media.mustaqbal.sch.id/uploads/foto-gedung-") {
		t.Errorf("url = %q", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url = %q, extension lost", url)
	}
	if url != "https://media.mustaqbal.sch.id/"+fake.key {
		t.Errorf("url %q does not match stored key %q", url, fake.key)
	}
}

func TestThumbnail_FitsWithinBounds(t *testing.T) {
	src := imaging.New(800, 600, image.White.C)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.JPEG); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	thumb, err := Thumbnail(&buf, 320, 240)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	b := img.Bounds()
	if b.Dx() > 320 || b.Dy() > 240 {
		t.Errorf("thumbnail %dx%d exceeds bounds", b.Dx(), b.Dy())
	}
}
