package domain

// DateLayout is the calendar-date representation used on the wire.
const DateLayout = "2006-01-02"

// DisplayDateLayout renders dates as "Jan 1, 2024" regardless of viewer locale.
const DisplayDateLayout = "Jan 2, 2006"
