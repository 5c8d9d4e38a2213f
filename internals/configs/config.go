package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret       string
	JWTExpiresInMin int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET belum diset!")
	}
	log.Println("✅ JWT_SECRET berhasil dimuat.")

	JWTExpiresInMin = GetEnvInt("JWT_EXPIRES_IN", 60)

	// Storage creds are validated again where the OSS client is built; here we
	// fail fast so a misconfigured deployment never boots half-working.
	if !OSSDisabled() {
		for _, key := range []string{"ALI_OSS_ENDPOINT", "ALI_OSS_ACCESS_KEY", "ALI_OSS_SECRET_KEY", "ALI_OSS_BUCKET"} {
			if GetEnv(key) == "" {
				log.Fatalf("❌ %s belum diset! (set OSS_DISABLED=true untuk local dev tanpa storage)", key)
			}
		}
		log.Println("✅ Konfigurasi OSS lengkap.")
	} else {
		log.Println("⚠️ OSS_DISABLED=true — video upload dimatikan.")
	}
}

// OSSDisabled reports whether the external video storage is explicitly off.
func OSSDisabled() bool {
	v, _ := strconv.ParseBool(GetEnv("OSS_DISABLED"))
	return v
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
