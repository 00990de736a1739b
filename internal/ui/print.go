package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	colorSuccess = color.New(color.FgGreen, color.Bold)
	colorError   = color.New(color.FgRed, color.Bold)
	colorWarning = color.New(color.FgYellow, color.Bold)
	colorInfo    = color.New(color.FgCyan)
	colorStep    = color.New(color.FgMagenta, color.Bold)
)

func PrintSuccess(format string, args ...interface{}) {
	colorSuccess.Print(IconSuccess + " ")
	fmt.Printf(format+"\n", args...)
}

func PrintError(format string, args ...interface{}) {
	colorError.Fprint(os.Stderr, IconError+" ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func PrintWarning(format string, args ...interface{}) {
	colorWarning.Print(IconWarning + " ")
	fmt.Printf(format+"\n", args...)
}

func PrintInfo(format string, args ...interface{}) {
	colorInfo.Print("ℹ ")
	fmt.Printf(format+"\n", args...)
}

func PrintStep(format string, args ...interface{}) {
	fmt.Println()
	colorStep.Printf("▶ "+format+"\n", args...)
	fmt.Println("────────────────────────────────────────────────────────")
}
