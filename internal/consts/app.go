package consts

const (
	ApplicationName    = "Interactive Gallery Server"
	ApplicationVersion = "1.2.0"
)
