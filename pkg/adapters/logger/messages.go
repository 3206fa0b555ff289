package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Pipeline progress
		"Starting pipeline":                    "パイプラインを開始します",
		"Preparing background":                 "背景を準備中",
		"Background prepared: %dx%d":           "背景準備完了: %dx%d",
		"Rendering title %q":                   "タイトル %q をレンダリング中",
		"Title set at %.0fpt across %d lines":  "タイトルを %.0fpt、%d 行で確定しました",
		"Resolving %d icons":                   "%d 個のアイコンを解決中",
		"Compositing layers":                   "レイヤーを合成中",
		"Output encoded: %d bytes":             "出力エンコード完了: %d バイト",
		"Layered document written: %d bytes":   "レイヤードドキュメント書き出し完了: %d バイト",
		"Pipeline completed successfully":      "パイプラインが正常に完了しました",

		// Warnings
		"Layered export failed: %s":          "レイヤード書き出しに失敗しました: %s",
		"Failed to write layered output: %s": "レイヤード出力の書き込みに失敗しました: %s",

		// Errors
		"Failed to read background: %s":    "背景の読み込みに失敗しました: %s",
		"Failed to prepare background: %s": "背景の準備に失敗しました: %s",
		"Failed to render title: %s":       "タイトルのレンダリングに失敗しました: %s",
		"Failed to resolve icons: %s":      "アイコンの解決に失敗しました: %s",
		"Failed to composite layers: %s":   "レイヤーの合成に失敗しました: %s",
		"Failed to encode output: %s":      "出力のエンコードに失敗しました: %s",
		"Failed to write output: %s":       "出力の書き込みに失敗しました: %s",
	})
}
