package constants

// PostDateLayout 文章日期格式，例如 March 05, 2024
const PostDateLayout = "January 02, 2006"
