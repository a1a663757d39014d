package blob

import (
	"strings"
	"testing"

	appcfg "github.com/cardiovital/server/internal/config"
)

func TestNewBlobStoreLocalMode(t *testing.T) {
	store, mode, err := NewBlobStore(appcfg.BlobConfig{Mode: appcfg.BlobModeLocal}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store != nil {
		t.Error("expected nil store in local mode")
	}
	if mode != appcfg.BlobModeLocal {
		t.Errorf("expected mode local, got %s", mode)
	}
}

func TestNewBlobStoreAutoFallsBackWithoutS3(t *testing.T) {
	store, mode, err := NewBlobStore(appcfg.BlobConfig{Mode: appcfg.BlobModeAuto}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store != nil {
		t.Error("expected nil store when S3 is not configured")
	}
	if mode != appcfg.BlobModeLocal {
		t.Errorf("expected fallback to local, got %s", mode)
	}
}

func TestNewBlobStoreS3ModeRequiresConfig(t *testing.T) {
	_, _, err := NewBlobStore(appcfg.BlobConfig{Mode: appcfg.BlobModeS3}, nil)
	if err == nil {
		t.Fatal("expected error for unconfigured forced S3 mode")
	}
	if !strings.Contains(err.Error(), "missing required config") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestNewBlobStoreUnknownMode(t *testing.T) {
	_, _, err := NewBlobStore(appcfg.BlobConfig{Mode: "ftp"}, nil)
	if err == nil {
		t.Fatal("expected error for unsupported mode")
	}
}
