package ports

import "github.com/bft-labs/ycbvideo/pkg/log"

// Logger is the logging port.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field
