package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/app"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain/services"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/router"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/views"
	"github.com/murkotick/menswear-storefront/internal/config"
	"github.com/murkotick/menswear-storefront/internal/pkg/eventloop"
	"github.com/murkotick/menswear-storefront/internal/pkg/kvstore"
	grpccatalog "github.com/murkotick/menswear-storefront/internal/transport/grpc/catalog"
	httpstorefront "github.com/murkotick/menswear-storefront/internal/transport/http/storefront"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Println("shutdown signal received")
		cancel()
	}()

	backend, err := kvstore.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("kvstore.Open(%s): %v", cfg.Storage.Driver, err)
	}
	kv := kvstore.New(backend, kvstore.WithNamespace(cfg.Namespace))
	defer kv.Close()

	creds, err := store.NewCredentials(cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("admin credentials: %v", err)
	}

	st := store.New(kv, store.Config{
		Credentials: creds,
		Shipping: services.ShippingPolicy{
			FreeShippingThreshold: cfg.FreeShippingThreshold,
			Fee:                   cfg.ShippingFee,
		},
		PersistTheme: cfg.PersistTheme,
	})

	// Everything below touches the store only from the loop goroutine.
	loop := eventloop.New()
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = loop.Run(ctx)
	}()

	rt := router.New(router.NewMemoryLocation(""), loop)
	dispatcher := views.NewDispatcher(st, views.Config{
		Brand:         cfg.Brand,
		SupportNumber: cfg.SupportNumber,
	})
	storefront := app.New(st, rt, dispatcher, loop, app.Config{ToastTTL: cfg.ToastTTL})
	if err := loop.Call(ctx, storefront.Start); err != nil {
		log.Fatalf("start storefront: %v", err)
	}

	// HTTP storefront
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpstorefront.NewEngine(httpstorefront.NewHandler(loop, storefront, nil), cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http serve: %v", err)
			cancel()
		}
	}()

	// gRPC admin API
	tokens := grpccatalog.NewTokens(cfg.JWTSecret, cfg.TokenTTL, nil)
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpccatalog.UnaryAuthInterceptor(tokens)))
	grpccatalog.RegisterCatalogAdminServer(grpcSrv, grpccatalog.NewHandler(loop, st, creds, tokens))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.GRPCAddr, err)
	}
	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcSrv.Serve(lis); err != nil {
			log.Printf("grpc serve: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcSrv.Stop()
	}

	<-loopDone
	log.Println("server stopped")
}
