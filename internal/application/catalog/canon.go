package catalog

import "thelight-api/internal/domain/entity"

// canon 新教 66 卷正典，按 KJV 顺序与章数
var canon = []entity.Book{
	{Name: "Genesis", OSIS: "Gen", Testament: entity.TestamentOld, Chapters: 50, Theme: "Creation", Icon: "🌍"},
	{Name: "Exodus", OSIS: "Exod", Testament: entity.TestamentOld, Chapters: 40, Theme: "Moses", Icon: "⛰️"},
	{Name: "Leviticus", OSIS: "Lev", Testament: entity.TestamentOld, Chapters: 27, Theme: "Law", Icon: "⚖️"},
	{Name: "Numbers", OSIS: "Num", Testament: entity.TestamentOld, Chapters: 36, Theme: "Journey", Icon: "🔢"},
	{Name: "Deuteronomy", OSIS: "Deut", Testament: entity.TestamentOld, Chapters: 34, Theme: "Covenant", Icon: "📜"},
	{Name: "Joshua", OSIS: "Josh", Testament: entity.TestamentOld, Chapters: 24, Theme: "Conquest", Icon: "🗡️"},
	{Name: "Judges", OSIS: "Judg", Testament: entity.TestamentOld, Chapters: 21, Theme: "Judges", Icon: "⚔️"},
	{Name: "Ruth", OSIS: "Ruth", Testament: entity.TestamentOld, Chapters: 4, Theme: "Loyalty", Icon: "🌾"},
	{Name: "1 Samuel", OSIS: "1Sam", Testament: entity.TestamentOld, Chapters: 31, Theme: "Saul", Icon: "👑"},
	{Name: "2 Samuel", OSIS: "2Sam", Testament: entity.TestamentOld, Chapters: 24, Theme: "David", Icon: "👑"},
	{Name: "1 Kings", OSIS: "1Kgs", Testament: entity.TestamentOld, Chapters: 22, Theme: "Solomon", Icon: "🏛️"},
	{Name: "2 Kings", OSIS: "2Kgs", Testament: entity.TestamentOld, Chapters: 25, Theme: "Prophets", Icon: "⚡"},
	{Name: "1 Chronicles", OSIS: "1Chr", Testament: entity.TestamentOld, Chapters: 29, Theme: "History", Icon: "📚"},
	{Name: "2 Chronicles", OSIS: "2Chr", Testament: entity.TestamentOld, Chapters: 36, Theme: "Temple", Icon: "📖"},
	{Name: "Ezra", OSIS: "Ezra", Testament: entity.TestamentOld, Chapters: 10, Theme: "Rebuilding", Icon: "🏗️"},
	{Name: "Nehemiah", OSIS: "Neh", Testament: entity.TestamentOld, Chapters: 13, Theme: "Walls", Icon: "🧱"},
	{Name: "Esther", OSIS: "Esth", Testament: entity.TestamentOld, Chapters: 10, Theme: "Queen", Icon: "👸"},
	{Name: "Job", OSIS: "Job", Testament: entity.TestamentOld, Chapters: 42, Theme: "Suffering", Icon: "💎"},
	{Name: "Psalms", OSIS: "Ps", Testament: entity.TestamentOld, Chapters: 150, Theme: "David", Icon: "🎵"},
	{Name: "Proverbs", OSIS: "Prov", Testament: entity.TestamentOld, Chapters: 31, Theme: "Wisdom", Icon: "💡"},
	{Name: "Ecclesiastes", OSIS: "Eccl", Testament: entity.TestamentOld, Chapters: 12, Theme: "Meaning", Icon: "🔍"},
	{Name: "Song of Solomon", OSIS: "Song", Testament: entity.TestamentOld, Chapters: 8, Theme: "Love", Icon: "💕"},
	{Name: "Isaiah", OSIS: "Isa", Testament: entity.TestamentOld, Chapters: 66, Theme: "Prophet", Icon: "🔥"},
	{Name: "Jeremiah", OSIS: "Jer", Testament: entity.TestamentOld, Chapters: 52, Theme: "Weeping", Icon: "💔"},
	{Name: "Lamentations", OSIS: "Lam", Testament: entity.TestamentOld, Chapters: 5, Theme: "Mourning", Icon: "😢"},
	{Name: "Ezekiel", OSIS: "Ezek", Testament: entity.TestamentOld, Chapters: 48, Theme: "Vision", Icon: "👁️"},
	{Name: "Daniel", OSIS: "Dan", Testament: entity.TestamentOld, Chapters: 12, Theme: "Lions", Icon: "🦁"},
	{Name: "Hosea", OSIS: "Hos", Testament: entity.TestamentOld, Chapters: 14, Theme: "Marriage", Icon: "💒"},
	{Name: "Joel", OSIS: "Joel", Testament: entity.TestamentOld, Chapters: 3, Theme: "Locusts", Icon: "🦗"},
	{Name: "Amos", OSIS: "Amos", Testament: entity.TestamentOld, Chapters: 9, Theme: "Justice", Icon: "⚖️"},
	{Name: "Obadiah", OSIS: "Obad", Testament: entity.TestamentOld, Chapters: 1, Theme: "Edom", Icon: "⛰️"},
	{Name: "Jonah", OSIS: "Jonah", Testament: entity.TestamentOld, Chapters: 4, Theme: "Whale", Icon: "🐋"},
	{Name: "Micah", OSIS: "Mic", Testament: entity.TestamentOld, Chapters: 7, Theme: "Micah", Icon: "🏔️"},
	{Name: "Nahum", OSIS: "Nah", Testament: entity.TestamentOld, Chapters: 3, Theme: "Judgment", Icon: "⚡"},
	{Name: "Habakkuk", OSIS: "Hab", Testament: entity.TestamentOld, Chapters: 3, Theme: "Questions", Icon: "❓"},
	{Name: "Zephaniah", OSIS: "Zeph", Testament: entity.TestamentOld, Chapters: 3, Theme: "Day of Lord", Icon: "🌪️"},
	{Name: "Haggai", OSIS: "Hag", Testament: entity.TestamentOld, Chapters: 2, Theme: "Temple", Icon: "🏗️"},
	{Name: "Zechariah", OSIS: "Zech", Testament: entity.TestamentOld, Chapters: 14, Theme: "Angels", Icon: "👼"},
	{Name: "Malachi", OSIS: "Mal", Testament: entity.TestamentOld, Chapters: 4, Theme: "Messenger", Icon: "📮"},

	{Name: "Matthew", OSIS: "Matt", Testament: entity.TestamentNew, Chapters: 28, Theme: "King", Icon: "👑"},
	{Name: "Mark", OSIS: "Mark", Testament: entity.TestamentNew, Chapters: 16, Theme: "Action", Icon: "⚡"},
	{Name: "Luke", OSIS: "Luke", Testament: entity.TestamentNew, Chapters: 24, Theme: "Physician", Icon: "👨‍⚕️"},
	{Name: "John", OSIS: "John", Testament: entity.TestamentNew, Chapters: 21, Theme: "Eagle", Icon: "🕊️"},
	{Name: "Acts", OSIS: "Acts", Testament: entity.TestamentNew, Chapters: 28, Theme: "Spirit", Icon: "🔥"},
	{Name: "Romans", OSIS: "Rom", Testament: entity.TestamentNew, Chapters: 16, Theme: "Gospel", Icon: "📜"},
	{Name: "1 Corinthians", OSIS: "1Cor", Testament: entity.TestamentNew, Chapters: 16, Theme: "Church", Icon: "💒"},
	{Name: "2 Corinthians", OSIS: "2Cor", Testament: entity.TestamentNew, Chapters: 13, Theme: "Strength", Icon: "💪"},
	{Name: "Galatians", OSIS: "Gal", Testament: entity.TestamentNew, Chapters: 6, Theme: "Freedom", Icon: "🆓"},
	{Name: "Ephesians", OSIS: "Eph", Testament: entity.TestamentNew, Chapters: 6, Theme: "Armor", Icon: "🛡️"},
	{Name: "Philippians", OSIS: "Phil", Testament: entity.TestamentNew, Chapters: 4, Theme: "Joy", Icon: "😊"},
	{Name: "Colossians", OSIS: "Col", Testament: entity.TestamentNew, Chapters: 4, Theme: "Christ", Icon: "👑"},
	{Name: "1 Thessalonians", OSIS: "1Thess", Testament: entity.TestamentNew, Chapters: 5, Theme: "Coming", Icon: "⏰"},
	{Name: "2 Thessalonians", OSIS: "2Thess", Testament: entity.TestamentNew, Chapters: 3, Theme: "Day", Icon: "🌅"},
	{Name: "1 Timothy", OSIS: "1Tim", Testament: entity.TestamentNew, Chapters: 6, Theme: "Pastor", Icon: "👨‍🏫"},
	{Name: "2 Timothy", OSIS: "2Tim", Testament: entity.TestamentNew, Chapters: 4, Theme: "Scripture", Icon: "📖"},
	{Name: "Titus", OSIS: "Titus", Testament: entity.TestamentNew, Chapters: 3, Theme: "Crete", Icon: "🏝️"},
	{Name: "Philemon", OSIS: "Phlm", Testament: entity.TestamentNew, Chapters: 1, Theme: "Forgiveness", Icon: "🤝"},
	{Name: "Hebrews", OSIS: "Heb", Testament: entity.TestamentNew, Chapters: 13, Theme: "Priest", Icon: "✝️"},
	{Name: "James", OSIS: "Jas", Testament: entity.TestamentNew, Chapters: 5, Theme: "Works", Icon: "⚖️"},
	{Name: "1 Peter", OSIS: "1Pet", Testament: entity.TestamentNew, Chapters: 5, Theme: "Rock", Icon: "🪨"},
	{Name: "2 Peter", OSIS: "2Pet", Testament: entity.TestamentNew, Chapters: 3, Theme: "Warning", Icon: "📝"},
	{Name: "1 John", OSIS: "1John", Testament: entity.TestamentNew, Chapters: 5, Theme: "Love", Icon: "❤️"},
	{Name: "2 John", OSIS: "2John", Testament: entity.TestamentNew, Chapters: 1, Theme: "Letter", Icon: "✉️"},
	{Name: "3 John", OSIS: "3John", Testament: entity.TestamentNew, Chapters: 1, Theme: "Gaius", Icon: "👤"},
	{Name: "Jude", OSIS: "Jude", Testament: entity.TestamentNew, Chapters: 1, Theme: "Contend", Icon: "⚔️"},
	{Name: "Revelation", OSIS: "Rev", Testament: entity.TestamentNew, Chapters: 22, Theme: "Apocalypse", Icon: "👁️"},
}
