// Command reqdemo assembles a raw HTTP/1.1 request from the command line
// and prints it to stdout. The defaults reproduce the canonical sample
// request (POST search.php to example.com with a short body).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"rawreq/charset"
	"rawreq/request"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	method = flag.String("X", "POST", "`method` of the request")
	target = flag.String("path", "search.php", "request `target`")
	proto  = flag.String("proto", "", "protocol `version`, e.g. HTTP/1.0")
	host   = flag.String("host", "http://example.com", "value of the `Host` field")
	from   = flag.String("from", "lukebrodowski@gmail.com", "value of the `From` field")
	agent  = flag.String("A", "", "override the `User-Agent` field")
	body   = flag.String("d", "Some sample data.", "`body` of the request")
	cs     = flag.String("charset", "", "IANA `charset` used to encode the body")
	stamp  = flag.Bool("date", false, "stamp a `Date` field")
)

func init() {
	flag.Usage = func() {
		h := "Usage: reqdemo [options]\nFlags:"
		fmt.Fprintln(os.Stderr, h)
		flag.PrintDefaults()
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	flag.Parse()

	var opts request.BuilderOptions
	opts.Protocol = *proto
	opts.UserAgent = *agent
	if *cs != "" {
		enc, err := charset.Lookup(*cs)
		if err != nil {
			log.Fatal().Err(err).Msg("resolving charset")
		}
		opts.Charset = enc
	}

	b, err := request.New(request.Method(strings.ToUpper(*method)), *target, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("creating request")
	}

	b.Host(*host).From(*from).BodyText(*body)
	if *stamp {
		b.StampDate()
	}

	if err := b.Validate(); err != nil {
		log.Fatal().Err(err).Msg("request is not well-formed")
	}

	if _, err := b.WriteTo(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("writing request")
	}
}
