package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `yaml:"server"`
	Echo   EchoConfig   `yaml:"echo"`
}

// ServerConfig は2つのリスナーの設定
type ServerConfig struct {
	Host     string `yaml:"host"`      // リッスンするホスト
	HTTPPort int    `yaml:"http_port"` // HTTPレスポンダーのポート番号
	WSPort   int    `yaml:"ws_port"`   // WebSocketエコーのポート番号

	// タイムアウト設定（HTTPリスナーのみ）
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// EchoConfig はエコー動作の設定
type EchoConfig struct {
	// Content-Typeヘッダーがないリクエストに適用するデフォルト値
	DefaultContentType string `yaml:"default_content_type"`

	// コンソールログに表示するペイロードプレビューの最大バイト数
	PreviewBytes int `yaml:"preview_bytes"`
}

// Load は設定を読み込む
// デフォルト値 → 環境変数 → YAMLファイル（KODAMA_CONFIG）の順に上書きする
func Load() (*Config, error) {
	// デフォルト設定を作成
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			HTTPPort:     getEnvAsIntOrDefault("HTTP_PORT", 8080),
			WSPort:       getEnvAsIntOrDefault("WS_PORT", 8081),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // アイドル接続を切らないためタイムアウト無効化
		},
		Echo: EchoConfig{
			DefaultContentType: "application/octet-stream",
			PreviewBytes:       64,
		},
	}

	// YAMLファイルが指定されていれば上書きする
	if path := os.Getenv("KODAMA_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// loadFile はYAMLファイルの内容で設定を上書きする
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("無効なHTTPポート番号: %d", c.Server.HTTPPort)
	}
	if c.Server.WSPort < 1 || c.Server.WSPort > 65535 {
		return fmt.Errorf("無効なWebSocketポート番号: %d", c.Server.WSPort)
	}
	if c.Server.HTTPPort == c.Server.WSPort {
		return fmt.Errorf("HTTPとWebSocketのポートが重複しています: %d", c.Server.HTTPPort)
	}

	// エコー設定の検証
	if c.Echo.DefaultContentType == "" {
		return fmt.Errorf("デフォルトContent-Typeが設定されていません")
	}
	if c.Echo.PreviewBytes < 0 {
		return fmt.Errorf("無効なプレビューバイト数: %d", c.Echo.PreviewBytes)
	}

	return nil
}

// HTTPAddress はHTTPレスポンダーのリッスンアドレスを返す
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HTTPPort)
}

// WSAddress はWebSocketエコーのリッスンアドレスを返す
func (c *Config) WSAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.WSPort)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
