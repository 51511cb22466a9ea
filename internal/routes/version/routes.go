package version

import (
	"os/exec"
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type VersionResponse struct {
	Name   string `json:"name"`
	Commit string `json:"commit"`
}

var Version = VersionResponse{Name: "reversi", Commit: "unknown"}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				Version.Commit = setting.Value
				return
			}
		}
	}

	// Builds with `go run` carry no vcs info, ask git directly.
	output, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return
	}
	Version.Commit = strings.TrimSpace(string(output))
}

func SetupRoutes(app *fiber.App) {
	app.Get("/version", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(Version)
}
