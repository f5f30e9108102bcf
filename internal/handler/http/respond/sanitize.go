package respond

import (
	"regexp"
)

var (
	// apikey=... クエリパラメータのマスク (上流ニュースAPIのキー)
	apiKeyParamPattern = regexp.MustCompile(`(?i)(apikey=)[a-zA-Z0-9]+`)

	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// APIキーのマスク
	msg = apiKeyParamPattern.ReplaceAllString(msg, "${1}****")

	// DBパスワードのマスク
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
