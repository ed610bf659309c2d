// Package logger provides slog helpers used by the Postmark client: a small
// logger factory and attribute constructors with nil-safe semantics.
//
// The client logs one debug record per API call. Pass any *slog.Logger through
// client.WithLogger; New is a convenience for the common setups:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "mailer")),
//	)
//
//	c, err := client.New(client.Config{ServerToken: token}, client.WithLogger(log))
//
// Attribute helpers return an empty slog.Attr when there is nothing to log,
// which slog discards:
//
//	log.Debug("postmark request",
//		logger.Endpoint("send"),
//		logger.StatusCode(resp.StatusCode),
//		logger.ErrorCode(code), // dropped when 0
//		logger.Error(err),      // dropped when nil
//	)
package logger
