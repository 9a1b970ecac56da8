package apod

import (
	"encoding/json"
	"testing"
)

func TestItem_DecodesWireFieldNames(t *testing.T) {
	t.Parallel()

	raw := `{
	  "copyright":"J. Doe",
	  "date":"2022-08-10",
	  "explanation":"Dust lanes.",
	  "hdurl":"https://apod.nasa.gov/image/hd.jpg",
	  "media_type":"image",
	  "service_version":"v1",
	  "title":"Dark Tower",
	  "url":"https://apod.nasa.gov/image/sd.jpg"
	}`

	var item Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.MediaType != "image" || item.ServiceVersion != "v1" {
		t.Fatalf("snake_case fields not mapped: %#v", item)
	}
	if !item.IsImage() {
		t.Fatal("IsImage() = false, want true")
	}
	if !item.HasHD() {
		t.Fatal("HasHD() = false, want true")
	}
}

func TestItem_OptionalFieldsAbsent(t *testing.T) {
	t.Parallel()

	var item Item
	if err := json.Unmarshal([]byte(`{"date":"2020-01-01","media_type":"video"}`), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.HasHD() {
		t.Fatal("HasHD() = true for absent hdurl")
	}
	if item.IsImage() {
		t.Fatal("IsImage() = true for video")
	}
	if item.Copyright != "" {
		t.Fatalf("Copyright = %q, want empty", item.Copyright)
	}
}

func TestDateHelpers(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("1995-06-16")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !d.Equal(MinArchiveDate) {
		t.Fatalf("ParseDate(1995-06-16) = %v, want MinArchiveDate", d)
	}
	if FormatDate(MinArchiveDate) != "1995-06-16" {
		t.Fatalf("FormatDate = %q, want 1995-06-16", FormatDate(MinArchiveDate))
	}
	if _, err := ParseDate("16/06/1995"); err == nil {
		t.Fatal("ParseDate accepted a non-ISO date")
	}
}
