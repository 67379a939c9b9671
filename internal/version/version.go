package version

// Version is the build version; overridden at build time via
// -ldflags "-X pokerquest/internal/version.Version=vX.Y.Z".
var Version = "dev"
