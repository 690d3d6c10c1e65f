// Package main provides localization for the yuvnv12 CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Convert images to and from raw NV12 frames":     "画像と NV12 生フレームを相互変換",
		"Load settings from a YAML file":                 "YAML ファイルから設定を読み込む",
		"Log level (debug, info, warn, error)":           "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                        "すべてのログ出力を抑制",
		"Goroutines used for conversion (-1 = all CPUs)": "変換に使う goroutine 数（-1 = 全 CPU）",
		"Save decoded planes for debugging":              "デバッグ用にデコードしたプレーンを保存",
		"Directory for debug output":                     "デバッグ出力先ディレクトリ",
		"Summary output format (text, yaml)":             "サマリーの出力形式 (text, yaml)",
		"Interrupted, shutting down...":                  "中断されました。終了します...",

		// Convert command
		"Convert a JPEG or PNG image to an NV12 file":    "JPEG または PNG 画像を NV12 ファイルに変換",
		"Show output file information after conversion": "変換後に出力ファイルの情報を表示",
		"Show detailed information":                     "詳細情報を表示",
		"convert requires INPUT and OUTPUT":             "convert には INPUT と OUTPUT が必要です",
		"Converted %s to NV12 (%s)":                     "%s を NV12 に変換しました（%s）",

		// Read command
		"Decode an NV12 file to an image":                 "NV12 ファイルを画像にデコード",
		"Save the decoded image to this path (JPG/PNG)":   "デコードした画像をこのパスに保存（JPG/PNG）",
		"Save a Y/U/V plane overview to this path":        "Y/U/V プレーンの一覧画像をこのパスに保存",
		"Show file information only (no conversion)":      "ファイル情報のみ表示（変換しない）",
		"read requires INPUT":                             "read には INPUT が必要です",
		"Width and height are required for conversion. Use --info to see suggested dimensions.": "変換には幅と高さが必要です。--info で推奨サイズを確認できます。",
		"invalid width %q":                                "幅 %q が不正です",
		"invalid height %q":                               "高さ %q が不正です",

		// Info command
		"Show what a file contains and suggest NV12 dimensions": "ファイルの内容を調べ、NV12 のサイズ候補を表示",
		"Expected frame width":                                  "想定するフレーム幅",
		"Expected frame height":                                 "想定するフレーム高さ",
		"info requires INPUT":                                   "info には INPUT が必要です",

		// Version command
		"Show version information": "バージョン情報を表示",
		"yuvnv12 version %s":       "yuvnv12 バージョン %s",

		// Errors and hints
		"Error: %s": "エラー: %s",
		"Suggestion: Resize your image to have even width and height (e.g. %dx%d).": "提案: 幅と高さが偶数になるよう画像をリサイズしてください（例: %dx%d）。",
		"Verify the width and height, or use 'info' to see suggested dimensions.":   "幅と高さを確認するか、'info' で推奨サイズを確認してください。",
		"Use 'convert' to turn an image file into NV12.":                            "画像ファイルを NV12 にするには 'convert' を使用してください。",
		"Supported formats: .jpg, .jpeg, .png":                                      "対応形式: .jpg, .jpeg, .png",
		"Input file extension is '%s'. Supported formats: .jpg, .jpeg, .png":        "入力ファイルの拡張子は '%s' です。対応形式: .jpg, .jpeg, .png",

		// Summary labels
		"Conversion Summary":  "変換サマリー",
		"Restore Summary":     "復元サマリー",
		"Inspection Summary":  "検査サマリー",
		"Input":               "入力",
		"Output":              "出力",
		"Dimensions":          "サイズ",
		"NV12 frame size":     "NV12 フレームサイズ",
		"pixels":              "ピクセル",
		"Kind":                "種別",
		"Format":              "形式",
		"Codec":               "コーデック",
		"Looks like":          "類似形式",
		"Matches dimensions":  "サイズ一致",
		"Possible dimensions": "サイズ候補",
		"Warning":             "警告",
		"yes":                 "はい",
		"no":                  "いいえ",
	})
}
