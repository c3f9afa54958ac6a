package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting recording session":              "録画セッションを開始します",
		"Run directory: %s":                       "実行ディレクトリ: %s",
		"Interrupted, shutting down...":           "中断されました。シャットダウン中...",
		"Session completed: %s (%d frames)":       "セッション完了: %s (%d フレーム)",
		"Output saved to %s":                      "出力を %s に保存しました",

		// Camera component
		"Current camera configuration: index %d, resolution %dx%d, frame rate %dfps": "現在のカメラ設定: インデックス %d, 解像度 %dx%d, フレームレート %dfps",
		"Camera resources have been released": "カメラのリソースを解放しました",
		"Camera is not opened, trying to open it": "カメラが開かれていません。開こうとしています",

		// Recorder component
		"Start recording":                  "録画を開始します",
		"Stop record":                      "録画を停止します",
		"Timestamp mark enabled":           "タイムスタンプマークを有効にしました",
		"Video saved as: %s.mp4 (%d frames)": "ビデオを保存しました: %s.mp4 (%d フレーム)",
		"State %s -> %s":                   "状態 %s -> %s",

		// Preview
		"Starting live preview for %s":   "%s のライブプレビューを開始します",
		"Preview finished after %s":      "プレビューが %s 後に終了しました",

		// Probe / extract / sheet
		"Artifact %s: codec %s, %dx%d, %d samples, %.2fs": "アーティファクト %s: コーデック %s, %dx%d, %d サンプル, %.2f秒",
		"Record has been sliced: %s (%d frames)":          "録画をスライスしました: %s (%d フレーム)",
		"Contact sheet saved to %s (%d cells)":            "コンタクトシートを %s に保存しました (%d セル)",

		// Device selection
		"Available cameras as follow, please choose one: (range: [0-%d])": "利用可能なカメラは以下の通りです。選択してください: (範囲: [0-%d])",
		"Your selection is: [ %d: %s ]": "選択されたカメラ: [ %d: %s ]",
	})
}
