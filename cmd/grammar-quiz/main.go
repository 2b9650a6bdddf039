package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	grammarquiz "github.com/nsip/grammar-quiz"
	"github.com/peterbourgon/ff/v3"
)

func main() {

	fs := flag.NewFlagSet("grammar-quiz", flag.ExitOnError)
	var (
		_              = fs.String("config", "", "config file (optional), json format.")
		serviceName    = fs.String("name", "", "name for this quiz service instance, leave blank to auto-generate a name")
		serviceID      = fs.String("id", "", "id for this quiz service instance, leave blank to auto-generate a unique id")
		serviceHost    = fs.String("host", "localhost", "name/address of host for this service")
		servicePort    = fs.Int("port", 0, "port to run service on, if not specified will assign an available port automatically")
		notifyToken    = fs.String("notify-bot-token", "", "telegram bot token used to send result summaries")
		notifyChatID   = fs.String("notify-chat-id", "", "telegram chat id (or @channel) that receives result summaries")
		notifyEndpoint = fs.String("notify-api-endpoint", tgbotapi.APIEndpoint, "telegram bot api url template")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarNoPrefix(),
	); err != nil {
		fmt.Printf("\nCannot read grammar-quiz configuration:\n%s\n\n", err)
		os.Exit(1)
	}

	opts := []grammarquiz.Option{
		grammarquiz.Name(*serviceName),
		grammarquiz.ID(*serviceID),
		grammarquiz.Host(*serviceHost),
		grammarquiz.Port(*servicePort),
		grammarquiz.NotifyBotToken(*notifyToken),
		grammarquiz.NotifyChatID(*notifyChatID),
		grammarquiz.NotifyAPIEndpoint(*notifyEndpoint),
	}

	srvc, err := grammarquiz.New(opts...)
	if err != nil {
		fmt.Printf("\nCannot create grammar-quiz service:\n%s\n\n", err)
		os.Exit(1)
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		fmt.Println("\ngrammar-quiz shutting down")
		srvc.Shutdown()
		fmt.Println("grammar-quiz closed")
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

}
