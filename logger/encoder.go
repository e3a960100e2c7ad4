package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// ANSI codes for the console encoder. One fixed palette; kin's output is
// modest enough that themes would be overkill.
const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
	colorDim   = "\x1b[2m"

	colorTime    = "\x1b[38;5;108m" // muted green timestamps
	colorName    = "\x1b[38;5;208m" // warm orange component names
	colorValue   = "\x1b[38;5;109m" // soft blue field values
	colorWarnFg  = "\x1b[38;5;214m"
	colorWarnBg  = "\x1b[48;5;58m"
	colorErrorFg = "\x1b[38;5;167m"
	colorErrorBg = "\x1b[48;5;88m"
)

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  tree.builder  linked spouses  rows=214"
type minimalEncoder struct {
	zapcore.Encoder // embed a base encoder for field serialization
	buf             *buffer.Buffer
}

func newMinimalEncoder() *minimalEncoder {
	// Base JSON encoder handles With()-accumulated fields internally
	baseEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return &minimalEncoder{
		Encoder: baseEncoder,
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level tag only for WARN and above; INFO/DEBUG stay quiet
	if tag := levelTag(ent.Level); tag != "" {
		final.AppendString("  ")
		final.AppendString(tag)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorName)
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(formatFields(fields))
	}

	final.AppendString("\n")
	return final, nil
}

// levelTag returns bold + colored + background tag for WARN/ERROR
func levelTag(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarnFg + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorErrorBg + colorErrorFg + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + colorErrorBg + colorErrorFg + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: loader -> loader, tree.builder -> t.builder
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// fieldValue extracts a display string from a zap field
func fieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", field.Integer)
	case zapcore.BoolType:
		if field.Integer == 1 {
			return "true"
		}
		return "false"
	case zapcore.ErrorType:
		if err, ok := field.Interface.(error); ok {
			return err.Error()
		}
	}
	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}
	return ""
}

// formatFields renders structured fields as dimmed key=value pairs
// with the value in color: rows=214 skipped=2
func formatFields(fields []zapcore.Field) string {
	pairs := make([]string, 0, len(fields))
	for _, field := range fields {
		val := fieldValue(field)
		if val == "" {
			continue
		}
		pairs = append(pairs, colorDim+field.Key+"="+colorReset+colorValue+val+colorReset)
	}
	return strings.Join(pairs, " ")
}
