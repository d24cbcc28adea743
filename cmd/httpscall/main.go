// Command httpscall issues a single HTTPS request described by a YAML
// file and prints the decoded result.
//
// Example request file:
//
//	url: https://httpbin.org
//	method: POST
//	path: /post
//	headers:
//	  accept: application/json
//	json:
//	  a: 1
//	  b: 2
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/exp/slog"

	httpsvc "github.com/fhellwig/https-service"
)

type requestFile struct {
	URL     string            `yaml:"url"`
	Method  string            `yaml:"method"`
	Path    string            `yaml:"path"`
	Headers map[string]string `yaml:"headers"`
	Query   map[string]string `yaml:"query"`
	JSON    any               `yaml:"json"`
	Form    map[string]string `yaml:"form"`
	Text    string            `yaml:"text"`
	Verbose bool              `yaml:"verbose"`
}

func main() {
	file := flag.String("f", "request.yaml", "request description file")
	flag.Parse()

	if err := run(*file); err != nil {
		fmt.Fprintln(os.Stderr, "httpscall:", err)
		os.Exit(1)
	}
}

func run(file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var req requestFile
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}

	opts := []httpsvc.ClientOption{}
	if req.Verbose {
		opts = append(opts, httpsvc.WithLogger(httpsvc.NewSlogLogger(os.Stderr, slog.LevelDebug)))
	}
	client, err := httpsvc.NewURL(req.URL, opts...)
	if err != nil {
		return err
	}

	path := req.Path
	if path == "" {
		path = "/"
	}
	headers := httpsvc.NewHeaderSet(req.Headers)

	payload := httpsvc.NoPayload()
	switch {
	case req.JSON != nil:
		payload = httpsvc.StructuredPayload(req.JSON)
	case len(req.Form) > 0:
		payload = httpsvc.StructuredPayload(req.Form)
		headers.Set("content-type", httpsvc.ContentTypeForm)
	case req.Text != "":
		payload = httpsvc.TextPayload(req.Text)
	}

	method := req.Method
	if method == "" {
		method = "GET"
	}
	if len(req.Query) > 0 {
		values := url.Values{}
		for key, value := range req.Query {
			values.Set(key, value)
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + values.Encode()
	}

	resp, err := client.Request(context.Background(), method, path, headers, payload)
	if err != nil {
		var svcErr *httpsvc.ServiceError
		if errors.As(err, &svcErr) {
			fmt.Println(svcErr.Message)
			os.Exit(1)
		}
		return err
	}

	fmt.Printf("%d %s\n", resp.StatusCode, resp.Type)
	switch data := resp.Data.(type) {
	case nil:
	case string:
		fmt.Println(data)
	case []byte:
		fmt.Printf("<%d bytes>\n", len(data))
	default:
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	}
	return nil
}
