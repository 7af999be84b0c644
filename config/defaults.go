package config

var DefaultConfig string = `
logging:
  console-level: 5
  file-level: -1

calendar:
  default: ""
  fallback: Calendar

location:
  verify: true
  timeout-seconds: 5

ics:
  output-dir: .
`
