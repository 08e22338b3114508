package app

import (
	"flag"
	"os"

	"github.com/GlebRadaev/erpfinance/internal/domain"
)

func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func notificationFor(to string) domain.Notification {
	return domain.Notification{
		Template:   "expense_submitted.html",
		Subject:    "New expense",
		Recipients: []string{to},
	}
}
