package profile

import (
	"reflect"
	"testing"

	"github.com/hitoshi/viewtrack/internal/model"
)

// TestDefaultPreferences はユーザー設定のデフォルト値を検証する。
func TestDefaultPreferences(t *testing.T) {
	got := defaultPreferences()

	want := model.Preferences{
		Language:             "en",
		Region:               "US",
		NotificationsEnabled: true,
		AutoPlayEnabled:      true,
		VideoQuality:         "auto",
		Interests:            []string{},
		DarkModeEnabled:      false,
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("defaultPreferences() = %+v, want %+v", got, want)
	}
	if got.Interests == nil {
		t.Error("Interests must be an empty slice, not nil")
	}
}

// TestSplitDisplayName は表示名の分割規則を検証する。
func TestSplitDisplayName(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantFirstName string
		wantLastName  string
	}{
		{
			name:          "2トークン",
			input:         "Jane Public",
			wantFirstName: "Jane",
			wantLastName:  "Public",
		},
		{
			name:          "3トークン以上は残りを結合",
			input:         "Jane Q Public",
			wantFirstName: "Jane",
			wantLastName:  "Q Public",
		},
		{
			name:          "1トークン",
			input:         "Jane",
			wantFirstName: "Jane",
			wantLastName:  "",
		},
		{
			name:          "空文字列",
			input:         "",
			wantFirstName: "",
			wantLastName:  "",
		},
		{
			name:          "空白のみ",
			input:         "   ",
			wantFirstName: "",
			wantLastName:  "",
		},
		{
			name:          "連続空白は1区切り扱い",
			input:         "Jane   Public",
			wantFirstName: "Jane",
			wantLastName:  "Public",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := splitDisplayName(tt.input)
			if first != tt.wantFirstName || last != tt.wantLastName {
				t.Errorf("splitDisplayName(%q) = (%q, %q), want (%q, %q)",
					tt.input, first, last, tt.wantFirstName, tt.wantLastName)
			}
		})
	}
}

// TestDefaultProfileDetails はプロファイル詳細のデフォルト値を検証する。
func TestDefaultProfileDetails(t *testing.T) {
	got := defaultProfileDetails("Jane Q Public")

	if got.FirstName != "Jane" {
		t.Errorf("FirstName = %q, want Jane", got.FirstName)
	}
	if got.LastName != "Q Public" {
		t.Errorf("LastName = %q, want Q Public", got.LastName)
	}
	if got.Gender != model.GenderNotSpecified {
		t.Errorf("Gender = %q, want %q", got.Gender, model.GenderNotSpecified)
	}
	if got.Bio != "" || got.Location != "" {
		t.Errorf("Bio/Location must be empty, got %q/%q", got.Bio, got.Location)
	}
	if got.SocialLinks == nil || len(got.SocialLinks) != 0 {
		t.Errorf("SocialLinks = %v, want empty slice", got.SocialLinks)
	}
}
