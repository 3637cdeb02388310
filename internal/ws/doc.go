// Package ws は、WebSocketエコーループを実装します。
//
// このパッケージは、WebSocketアップグレードハンドシェイクと、
// 接続ごとの読み取り・エコーの繰り返しを担当します。
//
// 責務:
//   - WebSocket接続の確立（任意のパスでアップグレードを受け付ける）
//   - 受信したメッセージをそのまま送信者へ返す（テキスト/バイナリの
//     フレーム種別を保持する）
//   - 接続イベントとエコー内容のコンソールログ出力
//   - 接続単位のエラー分離（1つの接続の失敗が他へ波及しない）
//
// 仕様:
//   - WebSocketはgorilla/websocketを使用
//   - ping/pongと分割フレームはプロトコルライブラリの標準動作に任せる
//   - 再接続は行わない。閉じた接続はそこで終了する
//   - アイドル接続のタイムアウトは設けない
package ws
