// Package server は、HTTPレスポンダーとWebSocketエコーのライフサイクルを管理します。
//
// このパッケージは、2つの独立したリスナーの起動、HTTPルーティング、
// シグナルによる停止処理を担当します。
//
// 責務:
//   - HTTPレスポンダー（GET /hello, POST /echo）の起動と管理
//   - WebSocketエコーリスナーの起動と管理
//   - 完了したリクエストのコンソールログ出力
//   - シグナル受信時の両リスナーの停止
//
// 仕様:
//   - HTTPルーティングはgin-gonic/ginを使用
//   - 2つのリスナーは状態を共有せず、起動と停止のみを共にする
//   - HTTPレスポンダーはグレースフルシャットダウンに対応
//   - WebSocketリスナーは接続を排出せずに即座に閉じる
//   - 複数クライアントの同時接続をサポート
package server
