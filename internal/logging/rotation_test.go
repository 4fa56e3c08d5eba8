package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRotatingWriter_AppendsWithoutRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 10, MaxBackups: 3})
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}

	if _, err := rw.Write([]byte("line one\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := rw.Write([]byte("line two\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("line one")) || !bytes.Contains(data, []byte("line two")) {
		t.Errorf("log content = %q", data)
	}
}

func TestRotatingWriter_ResumesExistingSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)
	if err := os.WriteFile(path, []byte("pre-existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rw, err := NewRotatingWriter(path, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}
	defer rw.Close()

	if rw.CurrentSize() != int64(len("pre-existing\n")) {
		t.Errorf("CurrentSize = %d", rw.CurrentSize())
	}
}

func TestRotatingWriter_RotatesAtSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LogFileName)

	// 1 MB limit, keep 2 backups.
	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}

	chunk := bytes.Repeat([]byte("x"), 512*1024)
	for i := 0; i < 5; i++ { // 2.5 MB total forces rotations
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("Write %d: %v", i, err)
		}
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("backup .1 should exist: %v", err)
	}

	// Active file stays within the limit.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > 1024*1024 {
		t.Errorf("active log size %d exceeds limit", info.Size())
	}
}

func TestRotatingWriter_CapsBackupCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LogFileName)

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}

	chunk := bytes.Repeat([]byte("y"), 512*1024)
	for i := 0; i < 8; i++ {
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("Write %d: %v", i, err)
		}
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(path + ".2"); !os.IsNotExist(err) {
		t.Error("backup .2 should not exist with MaxBackups=1")
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	rw, err := NewRotatingWriter(filepath.Join(t.TempDir(), LogFileName), DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := rw.Write([]byte("late\n")); err == nil {
		t.Error("Write after Close should fail")
	}
}
