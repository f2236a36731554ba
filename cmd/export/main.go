package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"

	"aristobox/config"
	"aristobox/internal/filter"
	"aristobox/internal/logger"
	"aristobox/internal/seed"
	"aristobox/internal/service"
	"aristobox/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	var (
		statusFlag = flag.String("status", filter.StatusAll, "pending|confirmed|delivered|exported|all")
		areaFlag   = flag.String("area", "", "подстрока района, без учёта регистра")
		fromFlag   = flag.String("from", "", "дата начала, YYYY-MM-DD")
		toFlag     = flag.String("to", "", "дата конца включительно, YYYY-MM-DD")
		minFlag    = flag.String("min", "", "минимальная сумма заказа")
		maxFlag    = flag.String("max", "", "максимальная сумма заказа")
		outFlag    = flag.String("out", "", "путь к файлу; по умолчанию EXPORT_DIR/<имя выгрузки>")
	)
	flag.Parse()

	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	ctx := context.Background()

	st := store.New(cfg.DB.Config, log)
	if err := seed.Ready(ctx, st, log); err != nil {
		log.Fatal("Хранилище не готово", zap.Error(err))
	}
	defer st.Close()

	svc := service.NewOrderService(service.Deps{
		Orders: st.Orders,
		Kits:   st.Kits,
		Hub:    st.Hub(),
		Log:    log,
	}, service.Options{
		Location:     cfg.Location,
		MarkExported: cfg.Export.MarkExported,
	})

	spec := filter.Spec{
		Status:    *statusFlag,
		Area:      *areaFlag,
		DateFrom:  *fromFlag,
		DateTo:    *toFlag,
		MinAmount: *minFlag,
		MaxAmount: *maxFlag,
	}

	var buf bytes.Buffer
	res, err := svc.ExportCSV(ctx, spec, &buf)
	if errors.Is(err, service.ErrNothingToExport) {
		log.Warn("Нет заказов для выгрузки")
		return
	}
	if err != nil {
		log.Fatal("Ошибка выгрузки", zap.Error(err))
	}

	path := *outFlag
	if path == "" {
		if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
			log.Fatal("Не удалось создать каталог выгрузки", zap.Error(err))
		}
		path = filepath.Join(cfg.Export.Dir, res.Filename)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Fatal("Не удалось записать файл", zap.String("path", path), zap.Error(err))
	}

	log.Info("Выгрузка записана",
		zap.String("path", path),
		zap.Int("orders", res.Orders),
		zap.Int("rows", res.Rows),
	)
}
