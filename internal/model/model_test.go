package model

import (
	"reflect"
	"testing"
)

func TestMetadata_AddUnique(t *testing.T) {
	md := &Metadata{}
	md.AddUnique("performer:guitar", "Jimmy Page")
	md.AddUnique("performer:guitar", "Jimmy Page")
	md.AddUnique("performer:guitar", "John Paul Jones")

	want := []string{"Jimmy Page", "John Paul Jones"}
	if got := md.Get("performer:guitar"); !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}
}

func TestMetadata_KeyOrder(t *testing.T) {
	md := &Metadata{}
	md.Add("performer:vocals", "Robert Plant")
	md.Add("performer:guitar", "Jimmy Page")
	md.Add("performer:vocals", "Sandy Denny")
	md.Add("title", "The Battle of Evermore")

	want := []string{"performer:vocals", "performer:guitar", "title"}
	if got := md.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %q, want %q", got, want)
	}
	if md.Len() != 3 {
		t.Errorf("Len() = %d, want 3", md.Len())
	}
}

func TestMetadata_Delete(t *testing.T) {
	md := NewMetadata(
		Tag{Key: "performer:guitar", Values: []string{"Jimmy Page"}},
		Tag{Key: "performer:drums", Values: []string{"John Bonham"}},
	)

	md.Delete("performer:guitar")
	md.Delete("performer:missing")

	if got := md.Keys(); !reflect.DeepEqual(got, []string{"performer:drums"}) {
		t.Errorf("Keys() after Delete = %q", got)
	}
	if got := md.Get("performer:guitar"); len(got) != 0 {
		t.Errorf("Get() of deleted key = %q, want empty", got)
	}

	// Re-adding a deleted key moves it to the end.
	md.Add("performer:guitar", "Jimmy Page")
	if got := md.Keys(); !reflect.DeepEqual(got, []string{"performer:drums", "performer:guitar"}) {
		t.Errorf("Keys() after re-add = %q", got)
	}
}

func TestMetadata_RawItemsIsSnapshot(t *testing.T) {
	md := NewMetadata(Tag{Key: "performer:guitar", Values: []string{"Jimmy Page"}})

	items := md.RawItems()
	md.Delete("performer:guitar")
	items[0].Values[0] = "changed"

	if len(items) != 1 || items[0].Key != "performer:guitar" {
		t.Fatalf("RawItems() snapshot changed: %+v", items)
	}
	if md.Len() != 0 {
		t.Errorf("Len() = %d, want 0", md.Len())
	}
}

func TestCreditsRoundTrip(t *testing.T) {
	credits := []Credit{
		{Role: "guest guitar", Person: "Jimmy Page"},
		{Role: "lead vocals", Person: "Robert Plant"},
		{Role: "guest guitar", Person: "Jeff Beck"},
		{Role: "", Person: "Session Player"},
	}

	md := CreditsToMetadata(credits)
	md.Add("~performersort:lead vocals", "Plant, Robert")
	md.Add("title", "ignored")

	want := []Credit{
		{Role: "guest guitar", Person: "Jimmy Page"},
		{Role: "guest guitar", Person: "Jeff Beck"},
		{Role: "lead vocals", Person: "Robert Plant"},
		{Role: "", Person: "Session Player"},
	}
	if got := MetadataToCredits(md); !reflect.DeepEqual(got, want) {
		t.Errorf("MetadataToCredits() = %+v, want %+v", got, want)
	}
}

func TestCredit_Key(t *testing.T) {
	tests := []struct {
		credit Credit
		want   string
	}{
		{Credit{Role: "guitar", Person: "x"}, "performer:guitar"},
		{Credit{Role: "", Person: "x"}, "performer:"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.credit.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}
