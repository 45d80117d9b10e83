package hexagram

import "HexOracle/internal/model"

// entries transcribes the 64-hexagram knowledge base in King Wen order.
// Keys are bottom-to-top binary digits. Two keys in the source material were
// corrupt (萃 and 旅 collided with 观 and 咸); they are restored to the
// canonical trigram assignments so the table covers all of {0,1}^6.
var entries = []struct {
	key string
	rec model.HexagramRecord
}{
	{key: "1,1,1,1,1,1", rec: model.HexagramRecord{
		Name: "乾", Judgment: "元亨利贞。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "天行健，君子以自强不息。",
			QuantReading: "多头强势，动能充沛，如飞龙在天。",
			Strategy:     "顺势做多，但需警惕高位滞涨。",
			LifeAdvice:   "运势极佳，适合大展宏图，忌骄傲。",
		},
	}},
	{key: "0,0,0,0,0,0", rec: model.HexagramRecord{
		Name: "坤", Judgment: "元亨，利牝马之贞。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "地势坤，君子以厚德载物。",
			QuantReading: "空头主导或底部盘整，波动率低。",
			Strategy:     "不宜追高，适合定投或空仓观望。",
			LifeAdvice:   "包容忍耐，以静制动。",
		},
	}},
	{key: "1,0,0,0,1,0", rec: model.HexagramRecord{
		Name: "屯", Judgment: "元亨利贞。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "云雷屯。",
			QuantReading: "筑底阶段，震荡剧烈，方向未明。",
			Strategy:     "建仓需谨慎，控制仓位。",
			LifeAdvice:   "万事开头难，积蓄力量。",
		},
	}},
	{key: "0,1,0,0,0,1", rec: model.HexagramRecord{
		Name: "蒙", Judgment: "亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "山下出泉，蒙。",
			QuantReading: "信息混沌，趋势不明，迷雾重重。",
			Strategy:     "多看少动，等待信号。",
			LifeAdvice:   "局势不明朗，建议多咨询专家。",
		},
	}},
	{key: "1,1,1,0,1,0", rec: model.HexagramRecord{
		Name: "需", Judgment: "有孚，光亨。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "云上于天，需。",
			QuantReading: "上涨趋势中的回调，需求在积蓄。",
			Strategy:     "逢低吸纳，持仓待涨。",
			LifeAdvice:   "时机未到，耐心等待。",
		},
	}},
	{key: "0,1,0,1,1,1", rec: model.HexagramRecord{
		Name: "讼", Judgment: "有孚，窒惕。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "天与水违，讼。",
			QuantReading: "多空分歧巨大，成交量放大但滞涨。",
			Strategy:     "风险较高，建议减仓。",
			LifeAdvice:   "易生口角，以和为贵。",
		},
	}},
	{key: "0,1,0,0,0,0", rec: model.HexagramRecord{
		Name: "师", Judgment: "贞，丈人吉。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "地中有水，师。",
			QuantReading: "空头排列，趋势性下跌，力量集中。",
			Strategy:     "顺势做空，严守纪律。",
			LifeAdvice:   "需要严明的纪律和领导。",
		},
	}},
	{key: "0,0,0,0,1,0", rec: model.HexagramRecord{
		Name: "比", Judgment: "吉。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "地上有水，比。",
			QuantReading: "板块轮动良好，市场情绪和谐。",
			Strategy:     "跟随龙头，寻找补涨机会。",
			LifeAdvice:   "人际关系和谐，有贵人相助。",
		},
	}},
	{key: "1,1,1,0,1,1", rec: model.HexagramRecord{
		Name: "小畜", Judgment: "亨。密云不雨。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "风行天上，小畜。",
			QuantReading: "上涨遇阻，窄幅震荡，蓄势待发。",
			Strategy:     "高抛低吸，短期盘整。",
			LifeAdvice:   "积蓄力量，不可急于求成。",
		},
	}},
	{key: "1,1,0,1,1,1", rec: model.HexagramRecord{
		Name: "履", Judgment: "履虎尾。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "上天下泽，履。",
			QuantReading: "高位震荡，风险积聚，如履薄冰。",
			Strategy:     "设置止损，步步为营。",
			LifeAdvice:   "有惊无险，但须小心。",
		},
	}},
	{key: "1,1,1,0,0,0", rec: model.HexagramRecord{
		Name: "泰", Judgment: "小往大来。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "天地交，泰。",
			QuantReading: "多头市场，量价齐升，极为顺畅。",
			Strategy:     "积极做多，享受泡沫。",
			LifeAdvice:   "三阳开泰，非常吉利。",
		},
	}},
	{key: "0,0,0,1,1,1", rec: model.HexagramRecord{
		Name: "否", Judgment: "否之匪人。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "天地不交，否。",
			QuantReading: "流动性枯竭，阴跌不止。",
			Strategy:     "清仓离场，现金为王。",
			LifeAdvice:   "闭塞不通，宜退守。",
		},
	}},
	{key: "1,0,1,1,1,1", rec: model.HexagramRecord{
		Name: "同人", Judgment: "同人于野。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "天与火，同人。",
			QuantReading: "市场共识形成，普涨行情。",
			Strategy:     "重仓出击，跟随主流。",
			LifeAdvice:   "志同道合，利于团队。",
		},
	}},
	{key: "1,1,1,1,0,1", rec: model.HexagramRecord{
		Name: "大有", Judgment: "元亨。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "火在天上，大有。",
			QuantReading: "牛市主升浪，收获颇丰。",
			Strategy:     "持有核心资产，防止获利回吐。",
			LifeAdvice:   "运势昌隆，忌满招损。",
		},
	}},
	{key: "0,0,1,0,0,0", rec: model.HexagramRecord{
		Name: "谦", Judgment: "君子有终。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "地中有山，谦。",
			QuantReading: "价值低估，底部夯实。",
			Strategy:     "逢低布局，长线持有。",
			LifeAdvice:   "谦虚受益，低调行事。",
		},
	}},
	{key: "0,0,0,1,0,0", rec: model.HexagramRecord{
		Name: "豫", Judgment: "利建侯行师。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "雷出地奋，豫。",
			QuantReading: "突破盘整，放量上行。",
			Strategy:     "积极参与，顺势加仓。",
			LifeAdvice:   "安乐愉悦，利于行动。",
		},
	}},
	{key: "1,0,0,1,1,0", rec: model.HexagramRecord{
		Name: "随", Judgment: "元亨利贞。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "泽中有雷，随。",
			QuantReading: "趋势跟随，无明显主见。",
			Strategy:     "右侧交易，不摸顶底。",
			LifeAdvice:   "随遇而安，随时变通。",
		},
	}},
	{key: "0,1,1,0,0,1", rec: model.HexagramRecord{
		Name: "蛊", Judgment: "元亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "山下有风，蛊。",
			QuantReading: "利空出尽，估值修复。",
			Strategy:     "关注困境反转股。",
			LifeAdvice:   "整顿积弊，改革良机。",
		},
	}},
	{key: "1,1,0,0,0,0", rec: model.HexagramRecord{
		Name: "临", Judgment: "元亨利贞。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "泽上有地，临。",
			QuantReading: "多头逼空，阳线连发。",
			Strategy:     "果断进场，持有待涨。",
			LifeAdvice:   "居高临下，运势增长。",
		},
	}},
	{key: "0,0,0,0,1,1", rec: model.HexagramRecord{
		Name: "观", Judgment: "盥而不荐。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "风行地上，观。",
			QuantReading: "高位滞涨，缩量整理。",
			Strategy:     "多看少动，观察盘面。",
			LifeAdvice:   "冷静观察，静观其变。",
		},
	}},
	{key: "1,0,0,1,0,1", rec: model.HexagramRecord{
		Name: "噬嗑", Judgment: "利用狱。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "雷电，噬嗑。",
			QuantReading: "关键阻力位，多空激烈博弈。",
			Strategy:     "需要放量突破，否则回落。",
			LifeAdvice:   "遇到阻碍，需果断解决。",
		},
	}},
	{key: "1,0,1,0,0,1", rec: model.HexagramRecord{
		Name: "贲", Judgment: "小利有攸往。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "山下有火，贲。",
			QuantReading: "题材炒作，概念火热但无支撑。",
			Strategy:     "短线快进快出。",
			LifeAdvice:   "表面繁荣，需看清本质。",
		},
	}},
	{key: "0,0,0,0,0,1", rec: model.HexagramRecord{
		Name: "剥", Judgment: "不利有攸往。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "山附于地，剥。",
			QuantReading: "高位崩塌，获利盘出逃。",
			Strategy:     "止损离场，不可抄底。",
			LifeAdvice:   "基础不稳，防范损失。",
		},
	}},
	{key: "1,0,0,0,0,0", rec: model.HexagramRecord{
		Name: "复", Judgment: "亨。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "雷在地中，复。",
			QuantReading: "超跌反弹，V型反转。",
			Strategy:     "左侧建仓，长线布局。",
			LifeAdvice:   "一阳来复，否极泰来。",
		},
	}},
	{key: "1,0,0,1,1,1", rec: model.HexagramRecord{
		Name: "无妄", Judgment: "元亨利贞。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "天下雷行，物与无妄。",
			QuantReading: "回归价值，去除泡沫。",
			Strategy:     "不追题材，关注基本面。",
			LifeAdvice:   "真实无妄，不可投机。",
		},
	}},
	{key: "1,1,1,0,0,1", rec: model.HexagramRecord{
		Name: "大畜", Judgment: "利贞。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "天在山中，大畜。",
			QuantReading: "横盘吸筹，主力建仓。",
			Strategy:     "耐心持股，等待主升浪。",
			LifeAdvice:   "积蓄巨大，厚积薄发。",
		},
	}},
	{key: "1,0,0,0,0,1", rec: model.HexagramRecord{
		Name: "颐", Judgment: "贞吉。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "山下有雷，颐。",
			QuantReading: "缩量整固，上下两难。",
			Strategy:     "高抛低吸，或休息观望。",
			LifeAdvice:   "颐养身心，此时宜静。",
		},
	}},
	{key: "0,1,1,1,1,0", rec: model.HexagramRecord{
		Name: "大过", Judgment: "栋桡。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "泽灭木，大过。",
			QuantReading: "严重超买，乖离率过大。",
			Strategy:     "风险极大，建议清仓。",
			LifeAdvice:   "压力过大，需释放压力。",
		},
	}},
	{key: "0,1,0,0,1,0", rec: model.HexagramRecord{
		Name: "坎", Judgment: "习坎。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "水流而不盈，习坎。",
			QuantReading: "破位下行，深不见底。",
			Strategy:     "现金为王，切勿接飞刀。",
			LifeAdvice:   "重重险陷，务必保守。",
		},
	}},
	{key: "1,0,1,1,0,1", rec: model.HexagramRecord{
		Name: "离", Judgment: "利贞。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "明两作，离。",
			QuantReading: "加速赶顶，情绪狂热。",
			Strategy:     "短线博弈，快进快出。",
			LifeAdvice:   "如日中天，但来去匆匆。",
		},
	}},
	{key: "0,0,1,1,1,0", rec: model.HexagramRecord{
		Name: "咸", Judgment: "亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "山上有泽，咸。",
			QuantReading: "消息刺激，脉冲式行情。",
			Strategy:     "关注消息面，灵活操作。",
			LifeAdvice:   "感应沟通，利于社交。",
		},
	}},
	{key: "0,1,1,1,0,0", rec: model.HexagramRecord{
		Name: "恒", Judgment: "亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "雷风，恒。",
			QuantReading: "趋势稳定，慢牛或阴跌。",
			Strategy:     "顺着当前趋势操作。",
			LifeAdvice:   "恒久持续，保持现状。",
		},
	}},
	{key: "0,0,1,1,1,1", rec: model.HexagramRecord{
		Name: "遁", Judgment: "亨，小利贞。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "天下有山，遁。",
			QuantReading: "诱多出货，重心下移。",
			Strategy:     "逢反弹减仓，避险为主。",
			LifeAdvice:   "退避隐遁，不宜争锋。",
		},
	}},
	{key: "1,1,1,1,0,0", rec: model.HexagramRecord{
		Name: "大壮", Judgment: "利贞。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "雷在天上，大壮。",
			QuantReading: "放量突破，强势上攻。",
			Strategy:     "重仓持有，防冲高回落。",
			LifeAdvice:   "声势壮大，适合进攻。",
		},
	}},
	{key: "0,0,0,1,0,1", rec: model.HexagramRecord{
		Name: "晋", Judgment: "康侯用锡马。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "明出地上，晋。",
			QuantReading: "稳步推升，进二退一。",
			Strategy:     "积极进取，持股待涨。",
			LifeAdvice:   "旭日东升，步步高升。",
		},
	}},
	{key: "1,0,1,0,0,0", rec: model.HexagramRecord{
		Name: "明夷", Judgment: "利艰贞。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "明入地中，明夷。",
			QuantReading: "黑天鹅事件，大幅跳水。",
			Strategy:     "空仓避险，不要抱有幻想，韬光养晦。",
			LifeAdvice:   "前景黯淡，需忍耐。",
		},
	}},
	{key: "1,0,1,0,1,1", rec: model.HexagramRecord{
		Name: "家人", Judgment: "利女贞。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "风自火出，家人。",
			QuantReading: "防御性板块走强，结构性行情。",
			Strategy:     "关注消费、公用事业。",
			LifeAdvice:   "相亲相爱，基础稳固。",
		},
	}},
	{key: "1,1,0,1,0,1", rec: model.HexagramRecord{
		Name: "睽", Judgment: "小事吉。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "上火下泽，睽。",
			QuantReading: "板块分化，赚钱效应差。",
			Strategy:     "多空分歧大，小仓位试错，不宜重仓。",
			LifeAdvice:   "意见不合，小事可为。",
		},
	}},
	{key: "0,0,1,0,1,0", rec: model.HexagramRecord{
		Name: "蹇", Judgment: "利西南。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "山上有水，蹇。",
			QuantReading: "上有压力下有支撑，僵持不下。",
			Strategy:     "不宜硬闯，等待变盘。",
			LifeAdvice:   "前有险阻，最好求援。",
		},
	}},
	{key: "0,1,0,1,0,0", rec: model.HexagramRecord{
		Name: "解", Judgment: "利西南。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "雷雨作，解。",
			QuantReading: "利空消化，止跌回升。",
			Strategy:     "布局超跌反弹。",
			LifeAdvice:   "冰消瓦解，困难消除。",
		},
	}},
	{key: "1,1,0,0,0,1", rec: model.HexagramRecord{
		Name: "损", Judgment: "有孚，元吉。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "山下有泽，损。",
			QuantReading: "缩量阴跌，市值缩水。",
			Strategy:     "止损换股，先失后得。",
			LifeAdvice:   "减损获益，需投入成本。",
		},
	}},
	{key: "1,0,0,0,1,1", rec: model.HexagramRecord{
		Name: "益", Judgment: "利有攸往。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "风雷，益。",
			QuantReading: "政策利好，资金流入。",
			Strategy:     "积极参与，大展拳脚。",
			LifeAdvice:   "损上益下，环境宽松。",
		},
	}},
	{key: "1,1,1,1,1,0", rec: model.HexagramRecord{
		Name: "夬", Judgment: "扬于王庭。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "泽上于天，夬。",
			QuantReading: "冲关时刻，多头总攻。",
			Strategy:     "必须果断跟进，切勿犹豫。",
			LifeAdvice:   "决断突破，必须果断。",
		},
	}},
	{key: "0,1,1,1,1,1", rec: model.HexagramRecord{
		Name: "姤", Judgment: "女壮，勿用取女。", Outlook: model.OutlookBearish,
		Interpretation: model.Interpretation{
			MacroImage:   "天下有风，姤。",
			QuantReading: "冲高回落，头部迹象。",
			Strategy:     "虽然上涨但需减仓。",
			LifeAdvice:   "不期而遇，防微杜渐。",
		},
	}},
	{key: "0,0,0,1,1,0", rec: model.HexagramRecord{
		Name: "萃", Judgment: "亨。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "泽上于地，萃。",
			QuantReading: "资金抱团，龙头效应。",
			Strategy:     "加入核心资产，享受泡沫。",
			LifeAdvice:   "聚集荟萃，人气高涨。",
		},
	}},
	{key: "0,1,1,0,0,0", rec: model.HexagramRecord{
		Name: "升", Judgment: "元亨。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "地中生木，升。",
			QuantReading: "稳步上涨，均线多头。",
			Strategy:     "坚定持仓，不轻易下车。",
			LifeAdvice:   "积小成大，步步高升。",
		},
	}},
	{key: "0,1,0,1,1,0", rec: model.HexagramRecord{
		Name: "困", Judgment: "亨，贞，大人吉。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "泽无水，困。",
			QuantReading: "成交低迷，无人问津。",
			Strategy:     "不要轻易抄底，效率极低。",
			LifeAdvice:   "困顿穷乏，需坚守。",
		},
	}},
	{key: "0,1,1,0,1,0", rec: model.HexagramRecord{
		Name: "井", Judgment: "改邑不改井。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "木上有水，井。",
			QuantReading: "织布机行情，原地踏步。",
			Strategy:     "适合高股息策略，做定投。",
			LifeAdvice:   "价值仍在，适合定投。",
		},
	}},
	{key: "1,0,1,1,1,0", rec: model.HexagramRecord{
		Name: "革", Judgment: "元亨利贞。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "泽中有火，革。",
			QuantReading: "风格切换，新老交替。",
			Strategy:     "调仓换股，跟随新热点。",
			LifeAdvice:   "除旧布新，面临变革。",
		},
	}},
	{key: "0,1,1,1,0,1", rec: model.HexagramRecord{
		Name: "鼎", Judgment: "元吉。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "木上有火，鼎。",
			QuantReading: "新周期确立，权重搭台，格局稳定。",
			Strategy:     "布局蓝筹，长线看好。",
			LifeAdvice:   "稳重图新，新的繁荣。",
		},
	}},
	{key: "1,0,0,1,0,0", rec: model.HexagramRecord{
		Name: "震", Judgment: "亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "洊雷，震。",
			QuantReading: "消息面利空，盘中急跌。",
			Strategy:     "或是黄金坑，注意情绪修复。",
			LifeAdvice:   "突发事件，有惊无险。",
		},
	}},
	{key: "0,0,1,0,0,1", rec: model.HexagramRecord{
		Name: "艮", Judgment: "艮其背。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "兼山，艮。",
			QuantReading: "上涨乏力，多重顶。",
			Strategy:     "止盈离场，休息观望。",
			LifeAdvice:   "动静适时，止步不前。",
		},
	}},
	{key: "0,0,1,0,1,1", rec: model.HexagramRecord{
		Name: "渐", Judgment: "女归吉。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "山上有木，渐。",
			QuantReading: "碎步上行，慢牛行情。",
			Strategy:     "保持耐心，不要被震荡洗出局。",
			LifeAdvice:   "循序渐进，终成大器。",
		},
	}},
	{key: "1,1,0,1,0,0", rec: model.HexagramRecord{
		Name: "归妹", Judgment: "征凶。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "泽上有雷，归妹。",
			QuantReading: "走势怪异，诱多陷阱。",
			Strategy:     "如果不看好，坚决不参与。",
			LifeAdvice:   "错位之象，易失误。",
		},
	}},
	{key: "1,0,1,1,0,0", rec: model.HexagramRecord{
		Name: "丰", Judgment: "亨。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "雷电皆至，丰。",
			QuantReading: "成交天量，情绪亢奋。",
			Strategy:     "逐步止盈，落袋为安。",
			LifeAdvice:   "达到顶峰，盛极必衰。",
		},
	}},
	{key: "0,0,1,1,0,1", rec: model.HexagramRecord{
		Name: "旅", Judgment: "小亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "山上有火，旅。",
			QuantReading: "游资主导，一日游行情。",
			Strategy:     "打板或超短线，快进快出。",
			LifeAdvice:   "漂泊不定，不宜久留。",
		},
	}},
	{key: "0,1,1,0,1,1", rec: model.HexagramRecord{
		Name: "巽", Judgment: "小亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "随风，巽。",
			QuantReading: "市场形成一致预期，无脑跟随。",
			Strategy:     "不要逆势操作，风往哪吹往哪倒。",
			LifeAdvice:   "顺风而行，顺从时势。",
		},
	}},
	{key: "1,1,0,1,1,0", rec: model.HexagramRecord{
		Name: "兑", Judgment: "亨。", Outlook: model.OutlookBullish,
		Interpretation: model.Interpretation{
			MacroImage:   "丽泽，兑。",
			QuantReading: "交易活跃，换手率高。",
			Strategy:     "积极参与热点，但防高位被套。",
			LifeAdvice:   "喜悦沟通，防口舌是非。",
		},
	}},
	{key: "0,1,0,0,1,1", rec: model.HexagramRecord{
		Name: "涣", Judgment: "亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "风行水上，涣。",
			QuantReading: "筹码松动，主力撤退，行情散去。",
			Strategy:     "该跑就跑，不要留恋。",
			LifeAdvice:   "离散之象，人心涣散，凝聚力瓦解。",
		},
	}},
	{key: "1,1,0,0,1,0", rec: model.HexagramRecord{
		Name: "节", Judgment: "亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "泽上有水，节。",
			QuantReading: "箱体震荡，上有顶下有底。",
			Strategy:     "高抛低吸，懂得止盈。",
			LifeAdvice:   "节制适度，量力而行。",
		},
	}},
	{key: "1,1,0,0,1,1", rec: model.HexagramRecord{
		Name: "中孚", Judgment: "豚鱼吉。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "泽上有风，中孚。",
			QuantReading: "技术指标有效，走势规范。",
			Strategy:     "按技术图形操作，相信信号。",
			LifeAdvice:   "诚信感通，脚下有路。",
		},
	}},
	{key: "0,0,1,1,0,0", rec: model.HexagramRecord{
		Name: "小过", Judgment: "亨，利贞。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "山上有雷，小过。",
			QuantReading: "小幅波动，大趋势不明。",
			Strategy:     "小仓位试错，不要重仓博弈。",
			LifeAdvice:   "小有过度，宜守。",
		},
	}},
	{key: "1,0,1,0,1,0", rec: model.HexagramRecord{
		Name: "既济", Judgment: "亨，小利贞。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "水在火上，既济。",
			QuantReading: "完美收官，利好兑现。",
			Strategy:     "获利了结，见好就收。",
			LifeAdvice:   "大功告成，防盛极而衰。",
		},
	}},
	{key: "0,1,0,1,0,1", rec: model.HexagramRecord{
		Name: "未济", Judgment: "亨。", Outlook: model.OutlookNeutral,
		Interpretation: model.Interpretation{
			MacroImage:   "火在水上，未济。",
			QuantReading: "行情未完，充满变数。",
			Strategy:     "寻找新的增长点，在此博弈。",
			LifeAdvice:   "未完成，充满希望。",
		},
	}},
}
