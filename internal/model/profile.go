package model

import "time"

// 性別の列挙値。
const (
	GenderNotSpecified = "not_specified"
	GenderMale         = "male"
	GenderFemale       = "female"
	GenderOther        = "other"
)

// RoleUser は新規作成プロファイルのデフォルトロール。
const RoleUser = "user"

// AuthUserRecord はIdPが発行するアカウント作成イベントのユーザーレコード。
// 連絡先フィールドはすべてオプションで、存在する値をそのままプロファイルへ転記する。
type AuthUserRecord struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	PhoneNumber string `json:"phoneNumber"`
}

// Preferences はユーザー設定のレコード。
// プロファイル作成時にすべてデフォルト値で初期化される。
type Preferences struct {
	Language             string   `json:"language"`
	Region               string   `json:"region"`
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	AutoPlayEnabled      bool     `json:"autoPlayEnabled"`
	VideoQuality         string   `json:"videoQuality"`
	Interests            []string `json:"interests"`
	DarkModeEnabled      bool     `json:"darkModeEnabled"`
}

// ProfileDetails はプロファイルのサブレコード。
// 表示名を空白で分割したfirst/last nameを含む。
type ProfileDetails struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Bio         string   `json:"bio"`
	Location    string   `json:"location"`
	Gender      string   `json:"gender"`
	SocialLinks []string `json:"socialLinks"`
}

// UserProfile はアカウントIDごとに1件のプロファイルドキュメント。
// 作成は最大1回（first-write-wins）で、後続の作成要求は既存を上書きしない。
type UserProfile struct {
	UserID      string
	Email       string
	DisplayName string
	PhotoURL    string
	PhoneNumber string
	Role        string
	Preferences Preferences
	Profile     ProfileDetails
	CreatedAt   time.Time
	LastLoginAt time.Time
}
