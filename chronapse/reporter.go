package chronapse

import (
	"os"

	"chronapse.app/chronapse/internal/report"
)

func defaultReporter() Reporter {
	return report.NewConsole(os.Stdout)
}
