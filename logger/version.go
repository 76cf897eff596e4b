package logger

// Version of the taglog line format and API
const Version = "1.1.0"
