package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/eidolon3/newsletter-aggregator/internal/aggregator"
	"github.com/eidolon3/newsletter-aggregator/internal/collector"
)

// 一个仅执行一轮采集的命令行入口：结果以 JSON 输出到标准输出，适合手动验证各数据源
func main() {
	engine := aggregator.New(collector.DefaultFetchers())

	agg, err := engine.Run()
	if err != nil {
		log.Printf("collect: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(agg); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}
