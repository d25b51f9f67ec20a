package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "want" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "end_of_stream":
			return "入力が途中で終了しました"
		case "malformed_token":
			return "トークンの形式が不正です"
		case "unsupported_kind":
			return "未対応の形状種別です"
		case "hint_count_mismatch":
			return "次元ヒントの個数が一致しません"
		case "short_read":
			return "行のトークンが不足しています"
		case "overflow":
			return "数値が表現範囲を超えています"
		case "truncated":
			return "行が長すぎます"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "end_of_stream":
			return "input ended early"
		case "malformed_token":
			return "malformed token"
		case "unsupported_kind":
			return "unsupported shape kind"
		case "hint_count_mismatch":
			return "dimension hint count mismatch"
		case "short_read":
			return "line has too few tokens"
		case "overflow":
			return "number out of range"
		case "truncated":
			return "line too long"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T resolves a code through the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
