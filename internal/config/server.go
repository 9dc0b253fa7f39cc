package config

import (
	"os"
	"strings"
)

type Server struct {
	Addr           string
	AllowedOrigins []string
}

func NewServer() (*Server, error) {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok {
		addr = ":8080"
	}

	origins := []string{"*"}
	if originsStr, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		origins = origins[:0]
		for _, o := range strings.Split(originsStr, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Server{
		Addr:           addr,
		AllowedOrigins: origins,
	}, nil
}
