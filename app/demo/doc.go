// Package demo is a runnable showcase for the vector and deriv packages.
//
// It logs "Starting wait!", blocks for Config.Wait, logs "Finished waiting!",
// then evaluates v = (2, 3), w = (4, 5) and f(x) = 3x² - x + 16 and writes a
// report localized with golang.org/x/text:
//
//	app, err := demo.NewApp()
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	return app.Run(ctx)
//
// Configuration comes from the environment (see Config); logs go to
// Config.LogFile as "level=INFO msg=..." lines tagged with a run id.
package demo
