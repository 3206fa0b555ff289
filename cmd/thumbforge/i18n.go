package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Compose titled thumbnails with technology icons": "タイトルと技術アイコンを配置したサムネイルを作成",

		// Render command
		"Render a thumbnail from a background, title and icon queries": "背景・タイトル・アイコンクエリからサムネイルを描画",

		// Flags
		"Title text (use \\n for manual line breaks)":            "タイトルテキスト（\\n で手動改行）",
		"Background image path":                                  "背景画像のパス",
		"Comma-separated icon queries (e.g. python,react,docker)": "カンマ区切りのアイコンクエリ（例: python,react,docker）",
		"Output file path (extension added when missing)":        "出力ファイルパス（拡張子がない場合は追加）",
		"Also write a layered PSD document to this path":         "レイヤー付きPSDドキュメントもこのパスに出力",
		"YAML configuration file":                                "YAML設定ファイル",
		"Canvas size preset (fullhd, hd)":                        "キャンバスサイズのプリセット（fullhd, hd）",
		"Canvas width (overrides preset)":                        "キャンバスの幅（プリセットを上書き）",
		"Canvas height (overrides preset)":                       "キャンバスの高さ（プリセットを上書き）",
		"Enable debug output":                                    "デバッグ出力を有効化",
		"Directory for debug output":                             "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":                   "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                "全てのログ出力を抑制",

		// Runtime messages
		"Rendering %q...":               "%q を描画中...",
		"Output saved to %s":            "出力を %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Summary output flag
		"Output render summary to file (Markdown format)": "描画サマリーをファイルに出力（Markdown形式）",
		"Summary saved to %s":                             "サマリーを %s に保存しました",
		"Failed to write summary: %s":                     "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Render Summary":             "描画サマリー",
		"Generated":                  "生成日時",
		"Title":                      "タイトル",
		"Text":                       "テキスト",
		"Font size":                  "フォントサイズ",
		"Lines":                      "行数",
		"Title was truncated to fit": "タイトルは収まるように切り詰められました",
		"Icons":                      "アイコン",
		"Query":                      "クエリ",
		"Source":                     "取得元",
		"Detail":                     "詳細",
		"Output":                     "出力",
		"File":                       "ファイル",
		"Canvas":                     "キャンバス",
		"Size":                       "サイズ",
		"Layered file":               "レイヤー付きファイル",
		"layers":                     "レイヤー",
		"Elapsed":                    "処理時間",
		"Generated by thumbforge":    "生成: thumbforge",
	})
}
