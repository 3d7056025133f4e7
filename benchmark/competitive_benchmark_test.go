package benchmark

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/teelog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework, plain text output
// ---------------------------------------------------------------------------

// newTeelogLogger returns a teelog logger that writes to w.
func newTeelogLogger(w io.Writer) *logger.Logger {
	return logger.New("bench", w, false)
}

// newZapLogger returns a zap.Logger with the console encoder writing to w.
func newZapLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger with the text handler writing to w.
func newSlogLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger with the text formatter writing to w.
func newLogrusLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger writing to w.
func newZerologLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – single string message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoMessage(b *testing.B) {
	b.Run("teelog", func(b *testing.B) {
		l := newTeelogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – mixed argument list
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_MixedArgs(b *testing.B) {
	b.Run("teelog", func(b *testing.B) {
		l := newTeelogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("Count:", 5, 3.14, true)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard).Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infoln("Count:", 5, 3.14, true)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infoln("Count:", 5, 3.14, true)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Int("count", 5).Float64("ratio", 3.14).Bool("ok", true).Msg("Count:")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – parallel callers on one logger
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("teelog", func(b *testing.B) {
		l := newTeelogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message", 42)
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message", zap.Int("n", 42))
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Infoln("parallel message", 42)
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Int("n", 42).Msg("parallel message")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – tee to two destinations
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Tee(b *testing.B) {
	b.Run("teelog", func(b *testing.B) {
		l := newTeelogLogger(io.Discard)
		l.AddSink(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("tee message", i)
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		l := zap.New(zapcore.NewTee(
			zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel),
			zapcore.NewCore(enc.Clone(), zapcore.AddSync(io.Discard), zap.DebugLevel),
		))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("tee message", zap.Int("i", i))
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.MultiLevelWriter(io.Discard, io.Discard))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Int("i", i).Msg("tee message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – real file output
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	open := func(b *testing.B) *os.File {
		f, err := os.Create(filepath.Join(b.TempDir(), "bench.log"))
		if err != nil {
			b.Fatal(err)
		}
		b.Cleanup(func() { f.Close() })
		return f
	}

	b.Run("teelog", func(b *testing.B) {
		l := newTeelogLogger(open(b))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file message", i)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(open(b))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file message", zap.Int("i", i))
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(open(b))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infoln("file message", i)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(open(b))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Int("i", i).Msg("file message")
		}
	})
}
