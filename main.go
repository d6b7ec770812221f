package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/fossandhra/payment-fulfillment-service/config"
	"github.com/fossandhra/payment-fulfillment-service/dao"
	"github.com/fossandhra/payment-fulfillment-service/fulfillment"
	"github.com/fossandhra/payment-fulfillment-service/gateway"
	"github.com/fossandhra/payment-fulfillment-service/handlers"
	"github.com/fossandhra/payment-fulfillment-service/mailer"
	"github.com/gorilla/pat"
)

func main() {
	log.Namespace = "payment-fulfillment-service"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err), nil)
		return
	}

	log.Info("initialising payment-fulfillment-service...")

	daoService := dao.NewDAOService(cfg)

	svc, err := fulfillment.New(
		daoService,
		gateway.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFromAddress, cfg.PortalURL),
	)
	if err != nil {
		log.Error(fmt.Errorf("error initialising fulfillment service: '%s'. Exiting", err), nil)
		daoService.Shutdown()
		return
	}

	router := pat.New()
	handlers.Init(router, svc)

	server := &http.Server{Addr: cfg.BindAddr, Handler: router}

	go func() {
		log.Info("Starting HTTP server on " + cfg.BindAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(fmt.Errorf("error starting HTTP server: %s", err), nil)
		}
	}()

	waitForServiceClose(server, daoService)

	log.Info("Application successfully shutdown")
}

// waitForServiceClose will receive the close signal, drain in-flight requests
// and release database resources before exiting.
func waitForServiceClose(server *http.Server, daoService dao.DAO) {

	notificationChannel := make(chan os.Signal, 1)
	signal.Notify(notificationChannel, os.Interrupt, syscall.SIGTERM)

	<-notificationChannel
	log.Info("Close signal received, shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error(fmt.Errorf("error shutting down HTTP server: %s", err))
	}

	daoService.Shutdown()
}
