package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/carbonscope-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(_ string) {
	banner := `
   ____           _                  ____                       
  / ___|__ _ _ __| |__   ___  _ __  / ___|  ___ ___  _ __   ___ 
 | |   / _' | '__| '_ \ / _ \| '_ \ \___ \ / __/ _ \| '_ \ / _ \
 | |__| (_| | |  | |_) | (_) | | | | ___) | (_| (_) | |_) |  __/
  \____\__,_|_|  |_.__/ \___/|_| |_||____/ \___\___/| .__/ \___|
                                                    |_|         
        `
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Println(yellow(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(green(fmt.Sprintf("CarbonScope Dashboard CLI (v%s)", formattedVersion)))
}
