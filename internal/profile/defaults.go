package profile

import (
	"strings"

	"github.com/hitoshi/viewtrack/internal/model"
)

// defaultPreferences は新規プロファイルのユーザー設定デフォルト値を返す。
func defaultPreferences() model.Preferences {
	return model.Preferences{
		Language:             "en",
		Region:               "US",
		NotificationsEnabled: true,
		AutoPlayEnabled:      true,
		VideoQuality:         "auto",
		Interests:            []string{},
		DarkModeEnabled:      false,
	}
}

// defaultProfileDetails は表示名から導出したfirst/last nameを含む
// プロファイル詳細のデフォルト値を返す。
func defaultProfileDetails(displayName string) model.ProfileDetails {
	firstName, lastName := splitDisplayName(displayName)
	return model.ProfileDetails{
		FirstName:   firstName,
		LastName:    lastName,
		Bio:         "",
		Location:    "",
		Gender:      model.GenderNotSpecified,
		SocialLinks: []string{},
	}
}

// splitDisplayName は表示名を空白で分割し、先頭トークンをfirst name、
// 残りを結合したものをlast nameとして返す。
// 空文字列や空白のみの場合は両方とも空文字列を返す。
func splitDisplayName(displayName string) (firstName, lastName string) {
	tokens := strings.Fields(displayName)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}
