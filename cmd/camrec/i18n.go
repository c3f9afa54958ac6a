// Package main provides localization for the camrec CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Record a USB camera with an elapsed-time overlay and slice the result into frames": "USBカメラを経過時間オーバーレイ付きで録画し、結果をフレームに分割",
		"YAML configuration file":              "YAML設定ファイル",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "すべてのログ出力を抑制",

		// Record command
		"Record the camera and post-process the artifact":         "カメラを録画して成果物を後処理",
		"Capture device index (negative prompts for a device)":    "キャプチャデバイスのインデックス（負の値で対話的に選択）",
		"Requested frame width":                                   "要求するフレーム幅",
		"Requested frame height":                                  "要求するフレーム高さ",
		"Requested frame rate":                                    "要求するフレームレート",
		"Root directory for run output":                           "実行出力のルートディレクトリ",
		"Base name for the recording":                             "録画のベース名",
		"Sequence number in the artifact name":                    "成果物名の連番",
		"Show a live preview before recording":                    "録画前にライブプレビューを表示",
		"Seconds to record before enabling the timestamp overlay": "タイムスタンプオーバーレイを有効にするまでの録画秒数",
		"Seconds to keep recording after the mark (0 = run until timeout)": "マーク後に録画を継続する秒数（0 = タイムアウトまで）",
		"Hard recording timeout in seconds":                       "録画のハードタイムアウト（秒）",
		"Skip slicing the artifact into frames":                   "成果物のフレーム分割をスキップ",
		"Compose a contact sheet from the extracted frames":       "抽出フレームからコンタクトシートを作成",
		"Save intermediate outputs for debugging":                 "デバッグ用に中間出力を保存",
		"Directory for debug output":                              "デバッグ出力のディレクトリ",

		// Extract command
		"Slice an existing recording into numbered frames":                   "既存の録画を連番フレームに分割",
		"Directory for the extracted frames (default: next to the artifact)": "抽出フレームのディレクトリ（デフォルト: 成果物の隣）",

		// Devices command
		"List available capture devices": "利用可能なキャプチャデバイスを一覧表示",
		"No capture devices found":       "キャプチャデバイスが見つかりません",
	})
}
