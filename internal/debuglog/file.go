package debuglog

import (
	"log"
	"os"
)

// maxLogFileSize is the size after which the log file is rotated (10 MB)
const maxLogFileSize = 10 * 1024 * 1024

// OpenFile opens logPath for appending, first moving it to logPath+".old"
// when it has grown past maxLogFileSize.
func OpenFile(logPath string) (*os.File, error) {
	rotate(logPath, maxLogFileSize)
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func rotate(logPath string, limit int64) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= limit {
		return
	}
	oldPath := logPath + ".old"
	_ = os.Remove(oldPath)
	if err := os.Rename(logPath, oldPath); err != nil {
		log.Printf("debuglog: failed to rotate %s: %v", logPath, err)
		return
	}
	log.Printf("debuglog: rotated %s (%d bytes)", logPath, info.Size())
}
