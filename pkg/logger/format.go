package logger

import "fmt"

func sprintf(format string, v ...interface{}) string {
	return fmt.Sprintf(format, v...)
}

func sprintln(v ...interface{}) string {
	return fmt.Sprintln(v...)
}
