package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Converting %s to NV12": "%s を NV12 に変換中",
		"Restoring %s (%dx%d)":  "%s を復元中 (%dx%d)",
		"Inspecting %s":         "%s を検査中",
		"Output saved to %s":    "出力を %s に保存しました",
		"Failed to convert: %s": "変換に失敗しました: %s",
		"Failed to restore: %s": "復元に失敗しました: %s",
		"Failed to inspect: %s": "検査に失敗しました: %s",

		// Convert stage
		"Input extension %q is not .jpg, .jpeg or .png; trying anyway": "入力ファイルの拡張子 %q は .jpg, .jpeg, .png ではありませんが、処理を続行します",
		"Decoding image %s":                                            "画像 %s をデコード中",
		"Decoded %dx%d image":                                          "%dx%d の画像をデコードしました",
		"Encoding NV12 with %d workers":                                "%d ワーカーで NV12 にエンコード中",
		"Wrote %d bytes":                                               "%d バイトを書き込みました",

		// Restore stage
		"Reading NV12 frame %s":           "NV12 フレーム %s を読み込み中",
		"Decoding NV12 with %d workers":   "%d ワーカーで NV12 をデコード中",
		"Rendering plane overview":        "プレーン概要を描画中",
		"Saving debug planes":             "デバッグ用プレーンを保存中",
		"Failed to save debug planes: %s": "デバッグ用プレーンの保存に失敗しました: %s",

		// Probe stage
		"Detected %s container":           "%s コンテナを検出しました",
		"Buffer matches %dx%d NV12":       "バッファは %dx%d の NV12 と一致します",
		"Unrecognized buffer of %d bytes": "認識できない %d バイトのバッファ",
	})
}
